package db

import (
	"context"
	"log"
	"time"

	"github.com/BrunoSoussa/k-means-recomendation/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

// InitMongo conecta ao Mongo do histórico de recomendações.
// Com MONGO_URI vazio o histórico fica desligado e DB() devolve nil.
func InitMongo(cfg *config.Config) {
	if cfg.MongoURI == "" {
		log.Println("[mongo] MONGO_URI vazio, histórico desligado")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("[mongo] erro conectando: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("[mongo] ping falhou: %v", err)
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDB)
	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)
}

func DB() *mongo.Database {
	return mongoDB
}
