package service

import (
	"sort"
	"strings"

	"github.com/BrunoSoussa/k-means-recomendation/internal/models"
)

// CatalogService responde buscas sobre o catálogo filtrado em memória.
type CatalogService struct {
	holder *RecommenderHolder
}

func NewCatalogService(h *RecommenderHolder) *CatalogService {
	return &CatalogService{holder: h}
}

// Search busca por substring (case-insensitive) em título ou autor.
func (s *CatalogService) Search(q string, limit, offset int) []models.CatalogBook {
	catalog := s.holder.Current().Catalog()
	q = strings.ToLower(q)

	var hits []models.CatalogBook
	for _, b := range catalog {
		if q == "" ||
			strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) {
			hits = append(hits, b)
		}
	}

	if offset >= len(hits) {
		return []models.CatalogBook{}
	}
	hits = hits[offset:]
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

// Top devolve os livros com mais avaliações na matriz.
func (s *CatalogService) Top(limit int) []models.CatalogBook {
	catalog := s.holder.Current().Catalog()

	out := make([]models.CatalogBook, len(catalog))
	copy(out, catalog)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RatingsCount > out[j].RatingsCount })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
