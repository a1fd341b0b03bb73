package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/BrunoSoussa/k-means-recomendation/internal/service"
)

type BookHandler struct {
	svc *service.CatalogService
}

func NewBookHandler(s *service.CatalogService) *BookHandler {
	return &BookHandler{svc: s}
}

// @Summary Buscar livros no catálogo filtrado
// @Tags books
// @Produce json
// @Param q query string false "substring de título ou autor"
// @Param limit query int false "máximo de resultados (padrão 20)"
// @Param offset query int false "deslocamento para paginação"
// @Success 200 {array} models.CatalogBook
// @Router /books/search [get]
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	_ = json.NewEncoder(w).Encode(h.svc.Search(q, limit, offset))
}

// @Summary Livros com mais avaliações
// @Tags books
// @Produce json
// @Param limit query int false "máximo de resultados (padrão 10)"
// @Success 200 {array} models.CatalogBook
// @Router /books/top [get]
func (h *BookHandler) Top(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	}

	_ = json.NewEncoder(w).Encode(h.svc.Top(limit))
}
