// Package recommender é a fachada do sistema: carrega os CSVs, filtra,
// pivota a matriz e responde consultas de similaridade por título.
package recommender

import (
	"log"

	"github.com/BrunoSoussa/k-means-recomendation/internal/dataset"
	"github.com/BrunoSoussa/k-means-recomendation/internal/knn"
	"github.com/BrunoSoussa/k-means-recomendation/internal/matrix"
	"github.com/BrunoSoussa/k-means-recomendation/internal/models"
)

// Defaults dos thresholds de filtragem (mesmos do pipeline original).
const (
	DefaultMinBookRatings = 100
	DefaultMinUserRatings = 10
)

// Params configura a construção do recomendador.
// Threshold <= 0 desliga o filtro correspondente.
type Params struct {
	BooksFile      string
	RatingsFile    string
	MinBookRatings int
	MinUserRatings int
}

// BookRecommender mantém a matriz e o índice KNN, imutáveis depois do New.
// Consultas concorrentes são seguras; a construção não é reentrante.
type BookRecommender struct {
	mat     *matrix.RatingMatrix
	index   *knn.Index
	catalog []models.CatalogBook
	summary models.DatasetSummary
}

// New executa a sequência carregar -> filtrar -> pivotar -> fit, uma única vez.
func New(p Params) (*BookRecommender, error) {
	books, err := dataset.LoadBooks(p.BooksFile)
	if err != nil {
		return nil, err
	}
	ratings, err := dataset.LoadRatings(p.RatingsFile)
	if err != nil {
		return nil, err
	}

	fr, err := dataset.Filter(ratings, p.MinBookRatings, p.MinUserRatings)
	if err != nil {
		return nil, err
	}

	mat := matrix.Build(books, ratings, fr)
	if mat.Rows() == 0 {
		// livros filtrados sem metadados no CSV de livros
		return nil, &dataset.InsufficientDataError{What: "livros", Threshold: p.MinBookRatings}
	}
	index := knn.Fit(mat)

	authorByISBN := make(map[string]string, len(books))
	for _, b := range books {
		if _, ok := authorByISBN[b.ISBN]; !ok {
			authorByISBN[b.ISBN] = b.Author
		}
	}
	catalog := make([]models.CatalogBook, mat.Rows())
	for i := range catalog {
		catalog[i] = models.CatalogBook{
			ISBN:         mat.ISBN(i),
			Title:        mat.Title(i),
			Author:       authorByISBN[mat.ISBN(i)],
			RatingsCount: len(mat.Row(i)),
		}
	}

	r := &BookRecommender{
		mat:     mat,
		index:   index,
		catalog: catalog,
		summary: models.DatasetSummary{
			BooksLoaded:    len(books),
			RatingsLoaded:  len(ratings),
			FilteredBooks:  len(fr.Books),
			FilteredUsers:  len(fr.Users),
			MatrixRows:     mat.Rows(),
			MatrixCols:     mat.Cols(),
			MatrixNonZeros: mat.NNZ(),
		},
	}

	log.Printf("[recommender] dados carregados: matriz %dx%d (%d células), %d livros e %d usuários após filtros",
		mat.Rows(), mat.Cols(), mat.NNZ(), len(fr.Books), len(fr.Users))
	return r, nil
}

// GetRecommendations devolve até n livros mais similares ao título dado,
// do mais similar para o menos, nunca incluindo o próprio livro.
// Match de título exato e case-sensitive, sem busca aproximada.
func (r *BookRecommender) GetRecommendations(title string, n int) ([]models.BookRecommendation, error) {
	if n < 1 {
		return nil, &InvalidArgumentError{Param: "n_recommendations", Value: n}
	}

	row, ok := r.mat.RowByTitle(title)
	if !ok {
		return nil, &BookNotFoundError{Title: title}
	}

	neighbors, err := r.index.Query(row, n)
	if err != nil {
		return nil, err
	}

	out := make([]models.BookRecommendation, 0, len(neighbors))
	for _, nb := range neighbors {
		out = append(out, models.BookRecommendation{
			Title:           r.mat.Title(nb.Row),
			SimilarityScore: 1 - nb.Distance,
		})
	}
	return out, nil
}

// Summary devolve os contadores do pipeline de construção.
func (r *BookRecommender) Summary() models.DatasetSummary { return r.summary }

// Catalog devolve o catálogo filtrado, na ordem das linhas da matriz.
// O slice devolvido não deve ser modificado.
func (r *BookRecommender) Catalog() []models.CatalogBook { return r.catalog }
