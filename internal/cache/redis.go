package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/BrunoSoussa/k-means-recomendation/internal/config"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InitRedis conecta ao Redis. Com REDIS_ADDR vazio o cache fica desligado e
// os helpers abaixo viram no-ops.
func InitRedis(cfg *config.Config) {
	if cfg.RedisAddr == "" {
		log.Println("[cache] REDIS_ADDR vazio, cache desligado")
		return
	}

	client = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("[cache] erro conectando ao Redis: %v", err)
	}

	log.Println("[cache] Redis OK")
}

// GetJSON lê uma key do Redis e desserializa o JSON em dest, se existir.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}

	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON serializa value e grava no Redis com TTL em segundos.
func SetJSON(ctx context.Context, key string, value any, ttlSeconds int) error {
	if client == nil {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	return client.Set(ctx, key, b, ttl).Err()
}
