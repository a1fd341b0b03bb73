package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/BrunoSoussa/k-means-recomendation/internal/recommender"
)

// Runner de linha de comando: constrói o recomendador a partir dos CSVs e
// imprime as recomendações de um título.
func main() {
	var (
		booksFile      string
		ratingsFile    string
		title          string
		n              int
		minBookRatings int
		minUserRatings int
	)

	flag.StringVar(&booksFile, "books", "dataset_books/BX-Books.csv", "CSV de livros (isbn;title;author)")
	flag.StringVar(&ratingsFile, "ratings", "dataset_books/BX-Book-Ratings.csv", "CSV de avaliações (user;isbn;rating)")
	flag.StringVar(&title, "title", "Jewel", "título exato do livro")
	flag.IntVar(&n, "n", 5, "quantidade de recomendações")
	flag.IntVar(&minBookRatings, "min_book_ratings", recommender.DefaultMinBookRatings, "mínimo de avaliações por livro")
	flag.IntVar(&minUserRatings, "min_user_ratings", recommender.DefaultMinUserRatings, "mínimo de avaliações por usuário")
	flag.Parse()

	rec, err := recommender.New(recommender.Params{
		BooksFile:      booksFile,
		RatingsFile:    ratingsFile,
		MinBookRatings: minBookRatings,
		MinUserRatings: minUserRatings,
	})
	if err != nil {
		log.Fatalf("erro na inicialização do sistema: %v", err)
	}

	items, err := rec.GetRecommendations(title, n)
	if err != nil {
		log.Fatalf("erro ao gerar recomendações: %v", err)
	}

	fmt.Printf("\nRecomendações para: %s\n\n", title)
	for i, it := range items {
		fmt.Printf("%d. %s (Score: %.3f)\n", i+1, it.Title, it.SimilarityScore)
	}
}
