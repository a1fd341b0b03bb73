package repository

import (
	"context"
	"time"

	"github.com/BrunoSoussa/k-means-recomendation/internal/db"
	"github.com/BrunoSoussa/k-means-recomendation/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecommendationRepository guarda o histórico de consultas no Mongo.
type RecommendationRepository struct {
	col *mongo.Collection
}

// NewRecommendationRepository devolve nil quando o Mongo está desligado;
// os callers tratam repo nil como histórico desabilitado.
func NewRecommendationRepository() *RecommendationRepository {
	if db.DB() == nil {
		return nil
	}
	return &RecommendationRepository{
		col: db.DB().Collection("recommendations"),
	}
}

func (r *RecommendationRepository) Insert(ctx context.Context, rec *models.RecommendationLog) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, rec)
	return err
}

// FindByTitle lista o histórico de um título, mais recentes primeiro.
func (r *RecommendationRepository) FindByTitle(ctx context.Context, title string, limit int64) ([]models.RecommendationLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.M{"title": title}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RecommendationLog
	for cur.Next(ctx) {
		var rec models.RecommendationLog
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, cur.Err()
}
