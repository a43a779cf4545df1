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

// ScoreProcessor consome score_updates: atualiza cache e banco, repassa o
// update ao dashboard e emite game_finals quando um jogo chega ao fim.
// Callbacks de métricas monitoram cada etapa.
type ScoreProcessor struct {
	Log    *zap.Logger
	Reader *kafka.Reader
	Repo   *repository.PostgresRepo
	Cache  *cache.RedisCache

	// Emite o evento de jogo finalizado exatamente na transição para "final"
	PublishFinal func(ctx context.Context, e events.GameFinalized) error

	OnConsumed     func()
	OnCached       func()
	OnPersist      func()
	OnError        func(string) // métricas por fase
	OnAfterPersist func(e events.ScoreUpdate)
}

// Run inicia o loop de consumo; retorna só quando o contexto cancela.
func (p *ScoreProcessor) Run(ctx context.Context) error {
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

		var ev events.ScoreUpdate
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			p.Log.Warn("invalid message", zap.Error(err))
			if p.OnError != nil {
				p.OnError("decode")
			}
			continue
		}

		// Cache primeiro; falha aqui não bloqueia a persistência
		if err := p.Cache.SetScore(ctx, ev); err != nil {
			p.Log.Warn("redis set failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("cache")
			}
		} else if p.OnCached != nil {
			p.OnCached()
		}

		prevStatus, err := p.Repo.UpsertGame(ctx, ev)
		if err != nil {
			p.Log.Warn("db upsert failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("db_upsert")
			}
			continue
		}
		if err := p.Repo.InsertScoreHistory(ctx, ev); err != nil {
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

		// Transição para final dispara a liquidação. O upsert é idempotente,
		// então replays do mesmo update final não reemitem o evento.
		if ev.Status == events.GameFinal && prevStatus != events.GameFinal {
			fin := events.GameFinalized{
				GameID:    ev.GameID,
				HomeTeam:  ev.HomeTeam,
				AwayTeam:  ev.AwayTeam,
				HomeScore: ev.HomeScore,
				AwayScore: ev.AwayScore,
				Ts:        time.Now().UTC(),
			}
			if err := p.PublishFinal(ctx, fin); err != nil {
				p.Log.Error("publish game final failed", zap.String("game_id", ev.GameID), zap.Error(err))
				if p.OnError != nil {
					p.OnError("publish_final")
				}
			} else {
				p.Log.Info("game finalized", zap.String("game_id", ev.GameID),
					zap.Int("home", ev.HomeScore), zap.Int("away", ev.AwayScore))
			}
		}
	}
}
