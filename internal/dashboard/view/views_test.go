package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/nba-bet-dashboard-poc/internal/dashboard/repo"
)

func f(v float64) *float64 { return &v }
func cents(v int) *int     { return &v }

func TestRecommendationBadges(t *testing.T) {
	rec := repo.Recommendation{
		GameID:        "25AUG29LALBOS",
		Market:        "MONEYLINE",
		Pick:          "LAL",
		EdgePct:       f(6.2),
		EVPct:         f(3.1),
		Confidence:    f(85),
		SharpMoneyPct: f(55),
		Model:         "ensemble-v2",
	}

	v := Recommendation(rec)
	assert.Equal(t, "strong", v.EdgeBand)
	assert.Equal(t, "Strong Value", v.EdgeLabel)
	assert.Equal(t, "moderate", v.EVBand)
	assert.Equal(t, "high", v.ConfidenceTier)
	assert.Equal(t, "medium", v.SharpMoneyTier)
}

func TestRecommendationMissingMetrics(t *testing.T) {
	// Métrica ausente vira selo "none" explícito, nunca zero classificado.
	v := Recommendation(repo.Recommendation{GameID: "g", Pick: "BOS"})
	assert.Equal(t, "none", v.EdgeBand)
	assert.Equal(t, "No Data", v.EdgeLabel)
	assert.Equal(t, "none", v.ConfidenceTier)
	assert.Equal(t, "none", v.SharpMoneyTier)
}

func TestHedgesDetectsDivergence(t *testing.T) {
	games := []repo.Game{
		{GameID: "g1", Status: "in_progress", HomeScore: 55, AwayScore: 50},
		{GameID: "g2", Status: "in_progress", HomeScore: 80, AwayScore: 60},
		{GameID: "g3", Status: "final", HomeScore: 100, AwayScore: 90},
	}
	quotes := []repo.MarketQuote{
		{Ticker: "T1", GameID: "g1", YesAsk: cents(40)}, // casa na frente, mercado diz visitante
		{Ticker: "T2", GameID: "g2", YesAsk: cents(60)}, // diferença > 10, fora do critério
		{Ticker: "T3", GameID: "g3", YesAsk: cents(40)}, // jogo encerrado
		{Ticker: "T4", GameID: "g9", YesAsk: cents(40)}, // sem jogo correspondente
	}

	out := Hedges(games, quotes)
	require.Len(t, out, 1)
	assert.Equal(t, "g1", out[0].GameID)
	assert.Equal(t, "T1", out[0].Ticker)
	assert.Equal(t, "yes", out[0].Side)
}

func TestHedgesEmptyWithoutLiveGames(t *testing.T) {
	out := Hedges(nil, nil)
	assert.Empty(t, out)
}

func TestPropScoreRanksScorersFirst(t *testing.T) {
	big := repo.PlayerSeasonStats{Name: "A", Points: 30, Rebounds: 5, Assists: 5}
	glue := repo.PlayerSeasonStats{Name: "B", Points: 12, Rebounds: 11, Assists: 9}

	assert.InDelta(t, 37.5, PropScore(big), 0.001)
	assert.InDelta(t, 27.0, PropScore(glue), 0.001)

	views := Props([]repo.PlayerSeasonStats{big, glue})
	require.Len(t, views, 2)
	assert.Greater(t, views[0].PropScore, views[1].PropScore)
}
