package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/nba-bet-dashboard-poc/internal/feed-processor/cache"
	"github.com/radieske/nba-bet-dashboard-poc/internal/feed-processor/repository"
	"github.com/radieske/nba-bet-dashboard-poc/pkg/contracts/events"
)

// QuoteProcessor consome market_quotes: cache, upsert + histórico e repasse
// ao dashboard. Mesmo formato do ScoreProcessor, sem emissão de finais.
type QuoteProcessor struct {
	Log    *zap.Logger
	Reader *kafka.Reader
	Repo   *repository.PostgresRepo
	Cache  *cache.RedisCache

	OnConsumed     func()
	OnCached       func()
	OnPersist      func()
	OnError        func(string)
	OnAfterPersist func(e events.MarketQuote)
}

func (p *QuoteProcessor) Run(ctx context.Context) error {
	for {
		m, err := p.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.Log.Warn("kafka read failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("read")
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if p.OnConsumed != nil {
			p.OnConsumed()
		}

		var ev events.MarketQuote
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			p.Log.Warn("invalid message", zap.Error(err))
			if p.OnError != nil {
				p.OnError("decode")
			}
			continue
		}
		if ev.Ticker == "" {
			p.Log.Warn("quote without ticker, skipping")
			if p.OnError != nil {
				p.OnError("decode")
			}
			continue
		}

		if err := p.Cache.SetQuote(ctx, ev); err != nil {
			p.Log.Warn("redis set failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("cache")
			}
		} else if p.OnCached != nil {
			p.OnCached()
		}

		if err := p.Repo.UpsertQuote(ctx, ev); err != nil {
			p.Log.Warn("db upsert failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("db_upsert")
			}
			continue
		}
		if err := p.Repo.InsertQuoteHistory(ctx, ev); err != nil {
			p.Log.Warn("db insert history failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("db_history")
			}
			continue
		}
		if p.OnPersist != nil {
			p.OnPersist()
		}
		if p.OnAfterPersist != nil {
			p.OnAfterPersist(ev)
		}
	}
}
