package dataset

import "github.com/BrunoSoussa/k-means-recomendation/internal/models"

// FilterResult guarda os sobreviventes dos dois filtros de esparsidade.
type FilterResult struct {
	Books map[string]struct{} // isbns com avaliações suficientes
	Users map[int]struct{}    // usuários com avaliações suficientes
}

// Filter aplica os dois thresholds de contagem mínima.
//
// Ordem fixa (mesma do pipeline original):
//  1. usuários são contados sobre o conjunto COMPLETO de avaliações;
//  2. livros são contados só sobre as avaliações dos usuários sobreviventes.
//
// Threshold <= 0 desliga o filtro correspondente (todos passam).
func Filter(ratings []models.Rating, minBookRatings, minUserRatings int) (*FilterResult, error) {
	userCounts := make(map[int]int)
	for _, r := range ratings {
		userCounts[r.UserID]++
	}

	users := make(map[int]struct{}, len(userCounts))
	for u, c := range userCounts {
		if minUserRatings <= 0 || c >= minUserRatings {
			users[u] = struct{}{}
		}
	}
	if len(users) == 0 {
		return nil, &InsufficientDataError{What: "usuarios", Threshold: minUserRatings}
	}

	bookCounts := make(map[string]int)
	for _, r := range ratings {
		if _, ok := users[r.UserID]; ok {
			bookCounts[r.ISBN]++
		}
	}

	books := make(map[string]struct{}, len(bookCounts))
	for isbn, c := range bookCounts {
		if minBookRatings <= 0 || c >= minBookRatings {
			books[isbn] = struct{}{}
		}
	}
	if len(books) == 0 {
		return nil, &InsufficientDataError{What: "livros", Threshold: minBookRatings}
	}

	return &FilterResult{Books: books, Users: users}, nil
}
