package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radieske/nba-bet-dashboard-poc/pkg/betmath"
)

func TestWinnerSide(t *testing.T) {
	assert.Equal(t, "home", WinnerSide(110, 104))
	assert.Equal(t, "away", WinnerSide(99, 101))
	assert.Equal(t, "", WinnerSide(100, 100))
}

func TestLegResultFor(t *testing.T) {
	tests := []struct {
		name      string
		selection string
		winner    string
		expected  betmath.LegResult
	}{
		{name: "home pick wins", selection: "home", winner: "home", expected: betmath.LegWon},
		{name: "home pick loses", selection: "home", winner: "away", expected: betmath.LegLost},
		{name: "away pick wins", selection: "away", winner: "away", expected: betmath.LegWon},
		{name: "tie keeps leg pending", selection: "home", winner: "", expected: betmath.LegPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LegResultFor(tt.selection, tt.winner))
		})
	}
}

func TestSettleSingle(t *testing.T) {
	tests := []struct {
		name      string
		selection string
		home      int
		away      int
		expected  betmath.BetOutcome
	}{
		{name: "home wins", selection: "home", home: 112, away: 108, expected: betmath.OutcomeWin},
		{name: "home loses", selection: "home", home: 95, away: 101, expected: betmath.OutcomeLoss},
		{name: "away wins", selection: "away", home: 95, away: 101, expected: betmath.OutcomeWin},
		{name: "tie is push", selection: "home", home: 100, away: 100, expected: betmath.OutcomePush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SettleSingle(tt.selection, tt.home, tt.away))
		})
	}
}

func TestActualReturnCents(t *testing.T) {
	// Vitória paga o retorno potencial por inteiro (stake incluso),
	// push devolve só o stake, derrota não paga nada.
	assert.Equal(t, int64(25000), ActualReturnCents(betmath.OutcomeWin, 10000, 25000))
	assert.Equal(t, int64(10000), ActualReturnCents(betmath.OutcomePush, 10000, 25000))
	assert.Equal(t, int64(0), ActualReturnCents(betmath.OutcomeLoss, 10000, 25000))
}

func TestParlayOutcomeAfterGameFinal(t *testing.T) {
	// Fluxo do worker: perna deste jogo resolve, o desfecho do parlay
	// sai das pernas persistidas.
	legs := []LegRow{
		{Selection: "home", Result: string(betmath.LegWon)},
		{Selection: "away", Result: string(betmath.LegWon)},
		{Selection: "home", Result: string(betmath.LegPending)},
	}

	results := make([]betmath.LegResult, 0, len(legs))
	for _, l := range legs {
		results = append(results, betmath.LegResult(l.Result))
	}
	assert.Equal(t, betmath.OutcomePending, betmath.ConsistentOutcome(results))

	// Última perna perde: o parlay perde na hora, sem esperar os demais jogos.
	results[2] = betmath.LegLost
	assert.Equal(t, betmath.OutcomeLoss, betmath.ConsistentOutcome(results))
}
