package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"
	"time"

	"github.com/BrunoSoussa/k-means-recomendation/internal/cache"
	"github.com/BrunoSoussa/k-means-recomendation/internal/models"
	"github.com/BrunoSoussa/k-means-recomendation/internal/repository"
)

const (
	DefaultK = 10
	MaxK     = 50 // por segurança, não deixa pedir 1000 itens
)

type RecommendService struct {
	holder  *RecommenderHolder
	recRepo *repository.RecommendationRepository
}

func NewRecommendService(h *RecommenderHolder, recRepo *repository.RecommendationRepository) *RecommendService {
	return &RecommendService{
		holder:  h,
		recRepo: recRepo,
	}
}

type RecRequest struct {
	Title   string
	K       int
	Refresh bool
}

func cacheKey(req RecRequest) string {
	// título vai hasheado: pode conter espaço, ':' e acentos
	h := fnv.New32a()
	_, _ = h.Write([]byte(req.Title))
	return fmt.Sprintf("rec:book:%08x:k:%d", h.Sum32(), req.K)
}

// Recommend consulta a fachada, com cache Redis e histórico em Mongo.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.BookRecommendation, error) {
	// defaults e limites para K
	if req.K <= 0 {
		req.K = DefaultK
	} else if req.K > MaxK {
		req.K = MaxK
	}

	// 1) Cache Redis (só quando refresh = false)
	var cached []models.BookRecommendation
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) Consulta ao índice em memória
	items, err := s.holder.Current().GetRecommendations(req.Title, req.K)
	if err != nil {
		return nil, err
	}

	// 3) Histórico em Mongo (não quebra a resposta se falhar)
	if s.recRepo != nil {
		hist := &models.RecommendationLog{
			Title:     req.Title,
			K:         req.K,
			Metric:    "cosine",
			Items:     items,
			CreatedAt: time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("erro guardando histórico no Mongo: %v", err)
		}
	}

	// 4) Cache (1 hora)
	if err := cache.SetJSON(ctx, cacheKey(req), items, 60*60); err != nil {
		log.Printf("erro cacheando recomendação no Redis: %v", err)
	}

	return items, nil
}

// History lista consultas anteriores de um título (vazio sem Mongo).
func (s *RecommendService) History(ctx context.Context, title string, limit int64) ([]models.RecommendationLog, error) {
	if s.recRepo == nil {
		return []models.RecommendationLog{}, nil
	}
	return s.recRepo.FindByTitle(ctx, title, limit)
}
