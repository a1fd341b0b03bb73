package main

import (
	"log"
	"net/http"

	_ "github.com/BrunoSoussa/k-means-recomendation/docs" // swagger docs

	"github.com/BrunoSoussa/k-means-recomendation/internal/cache"
	"github.com/BrunoSoussa/k-means-recomendation/internal/config"
	"github.com/BrunoSoussa/k-means-recomendation/internal/db"
	"github.com/BrunoSoussa/k-means-recomendation/internal/handler"
	"github.com/BrunoSoussa/k-means-recomendation/internal/recommender"
	"github.com/BrunoSoussa/k-means-recomendation/internal/repository"
	"github.com/BrunoSoussa/k-means-recomendation/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Book Recommender API
// @version 1.0
// @description API de recomendação de livros (item-based KNN, cosseno)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Redis e Mongo são opcionais (cache e histórico)
	cache.InitRedis(cfg)
	db.InitMongo(cfg)

	// pipeline carregar -> filtrar -> pivotar -> fit, uma vez no boot
	rec, err := recommender.New(recommender.Params{
		BooksFile:      cfg.BooksFile,
		RatingsFile:    cfg.RatingsFile,
		MinBookRatings: cfg.MinBookRatings,
		MinUserRatings: cfg.MinUserRatings,
	})
	if err != nil {
		log.Fatalf("[api] erro construindo o recomendador: %v", err)
	}
	holder := service.NewRecommenderHolder(rec)

	// repos
	recRepo := repository.NewRecommendationRepository()

	// services
	authSvc := service.NewAuthService(cfg.JWTSecret, cfg.AdminUser, cfg.AdminPasswordHash)
	recSvc := service.NewRecommendService(holder, recRepo)
	catalogSvc := service.NewCatalogService(holder)
	adminSvc := service.NewAdminService(cfg, holder)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	recH := handler.NewRecommendHandler(recSvc)
	bookH := handler.NewBookHandler(catalogSvc)
	adminH := handler.NewAdminHandler(adminSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rotas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/login", authH.Login)

	r.Get("/books/search", bookH.Search)
	r.Get("/books/top", bookH.Top)

	r.Get("/recommendations", recH.GetRecommendations)
	r.Get("/recommendations/history", recH.GetHistory)

	// WebSocket
	r.Get("/ws/recommendations", recH.GetRecommendationsWS)

	// ===========================
	// Rotas protegidas com JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)
		r.Use(handler.AdminOnly())

		r.Get("/admin/dataset/summary", adminH.GetSummary)
		r.Post("/admin/dataset/reload", adminH.Reload)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escutando em :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
