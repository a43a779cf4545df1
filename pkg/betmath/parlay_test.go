package betmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateParlaySettledBet(t *testing.T) {
	// Aposta liquidada: exibição reflete os resultados brutos das pernas.
	s := AggregateParlay([]LegResult{LegWon, LegWon, LegLost}, OutcomeLoss)
	require.NotNil(t, s)
	assert.Equal(t, []LegResult{LegWon, LegWon, LegLost}, s.PerLeg)
	assert.Equal(t, 2, s.WonCount)
	assert.Equal(t, 1, s.LostCount)
	assert.Equal(t, 3, s.TotalCount)
}

func TestAggregateParlayPendingBetHidesLegResults(t *testing.T) {
	// Aposta pendente: toda perna exibe pending, mas os contadores seguem
	// contando os resultados brutos.
	s := AggregateParlay([]LegResult{LegWon, LegLost, LegPending}, OutcomePending)
	require.NotNil(t, s)
	assert.Equal(t, []LegResult{LegPending, LegPending, LegPending}, s.PerLeg)
	assert.Equal(t, 1, s.WonCount)
	assert.Equal(t, 1, s.LostCount)
	assert.Equal(t, 3, s.TotalCount)
}

func TestAggregateParlayPendingLegOnSettledBet(t *testing.T) {
	// Perna sem resultado continua pending mesmo com a aposta liquidada.
	s := AggregateParlay([]LegResult{LegWon, LegPending}, OutcomeWin)
	require.NotNil(t, s)
	assert.Equal(t, []LegResult{LegWon, LegPending}, s.PerLeg)
	assert.Equal(t, 1, s.WonCount)
	assert.Equal(t, 0, s.LostCount)
}

func TestAggregateParlayEmptyResultTreatedAsPending(t *testing.T) {
	s := AggregateParlay([]LegResult{LegResult(""), LegWon}, OutcomeWin)
	require.NotNil(t, s)
	assert.Equal(t, []LegResult{LegPending, LegWon}, s.PerLeg)
	assert.Equal(t, 1, s.WonCount)
}

func TestAggregateParlayNotAParlay(t *testing.T) {
	// Lista vazia sinaliza "não é parlay", nunca um agregado com zero pernas.
	assert.Nil(t, AggregateParlay(nil, OutcomePending))
	assert.Nil(t, AggregateParlay([]LegResult{}, OutcomeLoss))
}

func TestAggregateParlayPreservesOrder(t *testing.T) {
	in := []LegResult{LegLost, LegWon, LegWon, LegLost}
	s := AggregateParlay(in, OutcomeLoss)
	require.NotNil(t, s)
	assert.Equal(t, in, s.PerLeg)
}

func TestConsistentOutcome(t *testing.T) {
	tests := []struct {
		name     string
		legs     []LegResult
		expected BetOutcome
	}{
		{name: "all won", legs: []LegResult{LegWon, LegWon, LegWon}, expected: OutcomeWin},
		{name: "one lost loses everything", legs: []LegResult{LegWon, LegLost, LegPending}, expected: OutcomeLoss},
		{name: "pending leg keeps bet pending", legs: []LegResult{LegWon, LegPending}, expected: OutcomePending},
		{name: "empty is pending", legs: nil, expected: OutcomePending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConsistentOutcome(tt.legs))
		})
	}
}
