package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/nba-bet-dashboard-poc/internal/dashboard/repo"
)

func TestBetViewSingle(t *testing.T) {
	actual := int64(25000)
	b := repo.Bet{
		ID:                   "bet-1",
		GameID:               "25AUG29LALBOS",
		Market:               "MONEYLINE",
		Selection:            "home",
		StakeCents:           10000,
		AmericanOdds:         150,
		Outcome:              "win",
		PotentialReturnCents: 25000,
		ActualReturnCents:    &actual,
		CreatedAt:            time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}

	v := Bet(b, nil)
	assert.Equal(t, "$100.00", v.Stake)
	assert.Equal(t, "+150", v.AmericanOdds)
	assert.Equal(t, "$250.00", v.PotentialReturn)
	assert.Equal(t, "$250.00", v.ActualReturn)
	assert.Empty(t, v.Legs)
	assert.Zero(t, v.TotalCount)
}

func TestBetViewPendingBetHidesActualReturn(t *testing.T) {
	b := repo.Bet{ID: "bet-2", StakeCents: 11000, AmericanOdds: -110, Outcome: "pending", PotentialReturnCents: 21000}
	v := Bet(b, nil)
	assert.Equal(t, "-110", v.AmericanOdds)
	assert.Equal(t, "$210.00", v.PotentialReturn)
	assert.Empty(t, v.ActualReturn)
}

func TestBetViewParlayPendingOverridesLegDisplay(t *testing.T) {
	// Parlay ainda pendente: pernas já resolvidas exibem pending,
	// mas os contadores refletem o estado persistido.
	b := repo.Bet{ID: "bet-3", Outcome: "pending", StakeCents: 5000, AmericanOdds: 600, PotentialReturnCents: 35000}
	legs := []repo.BetLeg{
		{BetID: "bet-3", Selection: "home", AmericanOdds: -110, Result: "won", LegIndex: 0},
		{BetID: "bet-3", Selection: "away", AmericanOdds: 120, Result: "lost", LegIndex: 1},
		{BetID: "bet-3", Selection: "home", AmericanOdds: -140, Result: "pending", LegIndex: 2},
	}

	v := Bet(b, legs)
	require.Len(t, v.Legs, 3)
	assert.Equal(t, "pending", v.Legs[0].DisplayResult)
	assert.Equal(t, "pending", v.Legs[1].DisplayResult)
	assert.Equal(t, "pending", v.Legs[2].DisplayResult)
	assert.Equal(t, 1, v.WonCount)
	assert.Equal(t, 1, v.LostCount)
	assert.Equal(t, 3, v.TotalCount)
}

func TestBetViewSettledParlayShowsRawLegResults(t *testing.T) {
	b := repo.Bet{ID: "bet-4", Outcome: "loss", StakeCents: 5000, AmericanOdds: 600, PotentialReturnCents: 35000}
	legs := []repo.BetLeg{
		{BetID: "bet-4", Selection: "home", AmericanOdds: -110, Result: "won", LegIndex: 0},
		{BetID: "bet-4", Selection: "away", AmericanOdds: 120, Result: "lost", LegIndex: 1},
	}

	v := Bet(b, legs)
	require.Len(t, v.Legs, 2)
	assert.Equal(t, "won", v.Legs[0].DisplayResult)
	assert.Equal(t, "lost", v.Legs[1].DisplayResult)
	assert.Equal(t, "-110", v.Legs[0].AmericanOdds)
	assert.Equal(t, "+120", v.Legs[1].AmericanOdds)
}
