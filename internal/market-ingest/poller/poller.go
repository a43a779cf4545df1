package poller

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/nba-bet-dashboard-poc/internal/market-ingest/kalshi"
	"github.com/radieske/nba-bet-dashboard-poc/internal/market-ingest/publisher"
	"github.com/radieske/nba-bet-dashboard-poc/pkg/contracts/events"
)

// Poller varre periodicamente os mercados abertos da série configurada
// e publica cada cotação no Kafka.
type Poller struct {
	Client    *kalshi.Client
	Publisher *publisher.KafkaPublisher
	Series    string
	Interval  time.Duration
	Log       *zap.Logger
}

// Run executa uma varredura imediata e depois segue o intervalo até o
// contexto ser cancelado. Erros de uma varredura não param o loop.
func (p *Poller) Run(ctx context.Context) {
	p.sweep(ctx)

	t := time.NewTicker(p.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			p.Log.Info("context canceled, stopping poller")
			return
		case <-t.C:
			p.sweep(ctx)
		}
	}
}

func (p *Poller) sweep(ctx context.Context) {
	markets, err := p.Client.Markets(ctx, p.Series)
	if err != nil {
		p.Log.Warn("kalshi sweep failed", zap.Error(err))
		return
	}

	published := 0
	for _, m := range markets {
		quote := toQuote(m)
		if err := p.Publisher.Publish(ctx, quote); err != nil {
			p.Log.Error("publish quote", zap.String("ticker", m.Ticker), zap.Error(err))
			continue
		}
		published++
	}
	p.Log.Info("kalshi sweep done", zap.Int("markets", len(markets)), zap.Int("published", published))
}

// toQuote converte o shape da API para o contrato interno.
// Preço zero na API significa lado sem liquidez e vira nil.
func toQuote(m kalshi.Market) events.MarketQuote {
	return events.MarketQuote{
		Ticker:       m.Ticker,
		GameID:       kalshi.GameIDFromEventTicker(m.EventTicker),
		Title:        m.Title,
		YesBid:       centsOrNil(m.YesBid),
		YesAsk:       centsOrNil(m.YesAsk),
		NoBid:        centsOrNil(m.NoBid),
		NoAsk:        centsOrNil(m.NoAsk),
		Volume:       m.Volume,
		OpenInterest: m.OpenInterest,
		Liquidity:    m.Liquidity,
		Status:       m.Status,
		CloseTime:    m.CloseTime,
		UpdatedAt:    time.Now().UTC(),
		Source:       "kalshi",
	}
}

func centsOrNil(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}
