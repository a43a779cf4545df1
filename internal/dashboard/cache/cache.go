package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache guarda leituras quentes do dashboard (lista de jogos e cotações).
type Cache struct{ R *redis.Client }

func New(r *redis.Client) *Cache { return &Cache{R: r} }

func keyGames() string               { return "dash:games" }
func keyQuotes(gameID string) string { return "dash:quotes:" + gameID }

func (c *Cache) get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := c.R.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, dst)
}

func (c *Cache) set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, _ := json.Marshal(v)
	return c.R.Set(ctx, key, b, ttl).Err()
}

func (c *Cache) GetGames(ctx context.Context, dst any) (bool, error) {
	return c.get(ctx, keyGames(), dst)
}

func (c *Cache) SetGames(ctx context.Context, v any, ttl time.Duration) error {
	return c.set(ctx, keyGames(), v, ttl)
}

func (c *Cache) GetQuotes(ctx context.Context, gameID string, dst any) (bool, error) {
	return c.get(ctx, keyQuotes(gameID), dst)
}

func (c *Cache) SetQuotes(ctx context.Context, gameID string, v any, ttl time.Duration) error {
	return c.set(ctx, keyQuotes(gameID), v, ttl)
}
