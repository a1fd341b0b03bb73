package service

import (
	"sync"

	"github.com/BrunoSoussa/k-means-recomendation/internal/recommender"
)

// RecommenderHolder guarda o recomendador vigente. O reload do admin constrói
// uma instância nova e troca o ponteiro; consultas em andamento continuam na
// instância antiga, que é imutável.
type RecommenderHolder struct {
	mu  sync.RWMutex
	rec *recommender.BookRecommender
}

func NewRecommenderHolder(rec *recommender.BookRecommender) *RecommenderHolder {
	return &RecommenderHolder{rec: rec}
}

func (h *RecommenderHolder) Current() *recommender.BookRecommender {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.rec
}

func (h *RecommenderHolder) Swap(rec *recommender.BookRecommender) {
	h.mu.Lock()
	h.rec = rec
	h.mu.Unlock()
}
