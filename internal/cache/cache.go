package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/trimhub/booking-api/internal/config"
)

// Cache guarda leituras do catálogo (barbearias e serviços), que são
// imutáveis no fluxo de reserva. Disponibilidade nunca passa por aqui.
type Cache struct {
	client *redis.Client
}

func New(cfg *config.Config) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		// sem redis a API continua funcionando, só sem cache
		log.Printf("redis unavailable, catalog cache disabled: %v", err)
		return &Cache{client: nil}
	}

	return &Cache{client: client}
}

// GetJSON carrega a chave em dest. Retorna false em miss ou erro.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(val)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("cache set failed for %s: %v", key, err)
	}
}
