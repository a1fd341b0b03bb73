package config

import (
	"log"
	"os"
	"strconv"

	"github.com/BrunoSoussa/k-means-recomendation/internal/recommender"

	"github.com/joho/godotenv"
)

type Config struct {
	BooksFile      string
	RatingsFile    string
	MinBookRatings int
	MinUserRatings int

	HTTPPort string

	// Redis e Mongo são opcionais: string vazia desliga cache/histórico.
	RedisAddr string
	RedisPass string
	MongoURI  string
	MongoDB   string

	JWTSecret string
	AdminUser string
	// hash bcrypt da senha do admin (gerar com htpasswd -bnBC 10 "" senha)
	AdminPasswordHash string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BooksFile:      getEnv("BOOKS_FILE", "dataset_books/BX-Books.csv"),
		RatingsFile:    getEnv("RATINGS_FILE", "dataset_books/BX-Book-Ratings.csv"),
		MinBookRatings: getEnvInt("MIN_BOOK_RATINGS", recommender.DefaultMinBookRatings),
		MinUserRatings: getEnvInt("MIN_USER_RATINGS", recommender.DefaultMinUserRatings),

		HTTPPort: getEnv("HTTP_PORT", "8080"),

		RedisAddr: getEnv("REDIS_ADDR", ""),
		RedisPass: getEnv("REDIS_PASSWORD", ""),
		MongoURI:  getEnv("MONGO_URI", ""),
		MongoDB:   getEnv("MONGO_DB", "book_recommender"),

		JWTSecret: getEnv("JWT_SECRET", "super-secret"),
		AdminUser: getEnv("ADMIN_USER", "admin"),
		// default: hash de "admin" (só para ambiente local)
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH",
			"$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s não está setado, usando valor padrão\n", key)
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s não está setado, usando valor padrão\n", key)
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] %s=%q não é inteiro, usando valor padrão %d\n", key, v, def)
		return def
	}
	return n
}
