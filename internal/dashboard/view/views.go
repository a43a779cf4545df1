package view

import (
	"time"

	"github.com/radieske/nba-bet-dashboard-poc/internal/dashboard/dto"
	"github.com/radieske/nba-bet-dashboard-poc/internal/dashboard/repo"
	"github.com/radieske/nba-bet-dashboard-poc/pkg/betmath"
)

// Peso de rebotes e assistências no prop score.
const propSecondaryWeight = 0.75

func Game(g repo.Game) dto.GameView {
	return dto.GameView{
		GameID:    g.GameID,
		HomeTeam:  g.HomeTeam,
		AwayTeam:  g.AwayTeam,
		HomeScore: g.HomeScore,
		AwayScore: g.AwayScore,
		Status:    g.Status,
		Period:    g.Period,
		Clock:     g.Clock,
		UpdatedAt: g.UpdatedAt.Format(time.RFC3339),
	}
}

func Games(gs []repo.Game) []dto.GameView {
	out := make([]dto.GameView, 0, len(gs))
	for _, g := range gs {
		out = append(out, Game(g))
	}
	return out
}

// Recommendation resolve as faixas de edge/EV e os níveis de confiança e
// sharp money no servidor; o front só exibe os selos.
func Recommendation(rec repo.Recommendation) dto.RecommendationView {
	edge := betmath.EdgeBands.Classify(rec.EdgePct)
	ev := betmath.EVBands.Classify(rec.EVPct)
	return dto.RecommendationView{
		GameID:        rec.GameID,
		Market:        rec.Market,
		Pick:          rec.Pick,
		EdgePct:       rec.EdgePct,
		EVPct:         rec.EVPct,
		Confidence:    rec.Confidence,
		SharpMoneyPct: rec.SharpMoneyPct,
		Model:         rec.Model,
		Rationale:     rec.Rationale,
		CreatedAt:     rec.CreatedAt.Format(time.RFC3339),

		EdgeBand:       string(edge),
		EdgeLabel:      edge.Label(),
		EVBand:         string(ev),
		EVLabel:        ev.Label(),
		ConfidenceTier: string(betmath.ConfidenceTiers.Tier(rec.Confidence)),
		SharpMoneyTier: string(betmath.SharpMoneyTiers.Tier(rec.SharpMoneyPct)),
	}
}

func Recommendations(recs []repo.Recommendation) []dto.RecommendationView {
	out := make([]dto.RecommendationView, 0, len(recs))
	for _, r := range recs {
		out = append(out, Recommendation(r))
	}
	return out
}

func Quote(q repo.MarketQuote) dto.MarketQuoteView {
	v := dto.MarketQuoteView{
		Ticker:       q.Ticker,
		GameID:       q.GameID,
		Title:        q.Title,
		YesBid:       q.YesBid,
		YesAsk:       q.YesAsk,
		NoBid:        q.NoBid,
		NoAsk:        q.NoAsk,
		Volume:       q.Volume,
		OpenInterest: q.OpenInterest,
		Liquidity:    q.Liquidity,
		Status:       q.Status,
		UpdatedAt:    q.UpdatedAt.Format(time.RFC3339),
	}
	if q.CloseTime != nil {
		v.CloseTime = q.CloseTime.Format(time.RFC3339)
	}
	return v
}

func Quotes(qs []repo.MarketQuote) []dto.MarketQuoteView {
	out := make([]dto.MarketQuoteView, 0, len(qs))
	for _, q := range qs {
		out = append(out, Quote(q))
	}
	return out
}

// Hedges roda o detector sobre cada cotação de jogo ao vivo.
// Jogos sem cotação (ou sem divergência) não geram entrada.
func Hedges(games []repo.Game, quotes []repo.MarketQuote) []dto.HedgeView {
	byID := make(map[string]repo.Game, len(games))
	for _, g := range games {
		byID[g.GameID] = g
	}

	out := make([]dto.HedgeView, 0)
	for _, q := range quotes {
		g, ok := byID[q.GameID]
		if !ok {
			continue
		}
		sig := betmath.DetectHedge(
			betmath.LiveGame{Status: betmath.GameStatus(g.Status), HomeScore: g.HomeScore, AwayScore: g.AwayScore},
			betmath.Quote{YesAsk: q.YesAsk},
		)
		if sig == nil {
			continue
		}
		out = append(out, dto.HedgeView{
			GameID:    q.GameID,
			Ticker:    q.Ticker,
			Title:     q.Title,
			Side:      sig.Side,
			Reason:    sig.Reason,
			HomeScore: g.HomeScore,
			AwayScore: g.AwayScore,
			YesAsk:    q.YesAsk,
		})
	}
	return out
}

// PropScore pondera pontos acima de rebotes/assistências.
func PropScore(p repo.PlayerSeasonStats) float64 {
	return p.Points + propSecondaryWeight*p.Rebounds + propSecondaryWeight*p.Assists
}

func Props(stats []repo.PlayerSeasonStats) []dto.PropRecommendationView {
	out := make([]dto.PropRecommendationView, 0, len(stats))
	for _, p := range stats {
		out = append(out, dto.PropRecommendationView{
			PlayerID:  p.PlayerID,
			Name:      p.Name,
			Team:      p.Team,
			Points:    p.Points,
			Rebounds:  p.Rebounds,
			Assists:   p.Assists,
			UsagePct:  p.UsagePct,
			Season:    p.Season,
			PropScore: PropScore(p),
		})
	}
	return out
}
