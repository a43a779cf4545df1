package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/nba-bet-dashboard-poc/pkg/contracts/events"
)

// RedisCache guarda o último estado de cada feed no Redis
// TTL: tempo de expiração dos registros
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(c *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: c, TTL: ttl}
}

func scoreKey(gameID string) string { return "score:current:" + gameID }
func quoteKey(ticker string) string { return "quote:current:" + ticker }

// SetScore armazena o placar atual do jogo
func (r *RedisCache) SetScore(ctx context.Context, e events.ScoreUpdate) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, scoreKey(e.GameID), b, r.TTL).Err()
}

// SetQuote armazena a cotação atual do mercado
func (r *RedisCache) SetQuote(ctx context.Context, e events.MarketQuote) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, quoteKey(e.Ticker), b, r.TTL).Err()
}
