package service

import (
	"log"

	"github.com/BrunoSoussa/k-means-recomendation/internal/config"
	"github.com/BrunoSoussa/k-means-recomendation/internal/models"
	"github.com/BrunoSoussa/k-means-recomendation/internal/recommender"
)

// AdminService expõe o resumo do dataset e o reload dos CSVs.
type AdminService struct {
	cfg    *config.Config
	holder *RecommenderHolder
}

func NewAdminService(cfg *config.Config, h *RecommenderHolder) *AdminService {
	return &AdminService{cfg: cfg, holder: h}
}

func (s *AdminService) Summary() models.DatasetSummary {
	return s.holder.Current().Summary()
}

// Reload reconstrói o recomendador a partir dos CSVs configurados e troca a
// instância vigente. A instância antiga segue atendendo até a troca.
func (s *AdminService) Reload() (models.DatasetSummary, error) {
	rec, err := recommender.New(recommender.Params{
		BooksFile:      s.cfg.BooksFile,
		RatingsFile:    s.cfg.RatingsFile,
		MinBookRatings: s.cfg.MinBookRatings,
		MinUserRatings: s.cfg.MinUserRatings,
	})
	if err != nil {
		return models.DatasetSummary{}, err
	}

	s.holder.Swap(rec)
	log.Printf("[admin] dataset recarregado: %d linhas x %d colunas", rec.Summary().MatrixRows, rec.Summary().MatrixCols)
	return rec.Summary(), nil
}
