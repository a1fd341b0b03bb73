package handler

import (
	"errors"
	"net/http"

	"github.com/BrunoSoussa/k-means-recomendation/internal/dataset"
	"github.com/BrunoSoussa/k-means-recomendation/internal/recommender"
)

// writeError mapeia a taxonomia de erros do recomendador para status HTTP.
func writeError(w http.ResponseWriter, err error) {
	var notFound *recommender.BookNotFoundError
	var badArg *recommender.InvalidArgumentError
	var load *dataset.DataLoadError
	var insufficient *dataset.InsufficientDataError

	switch {
	case errors.As(err, &notFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &badArg):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &load), errors.As(err, &insufficient):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
