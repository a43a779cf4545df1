package betmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPotentialReturnCents(t *testing.T) {
	tests := []struct {
		name     string
		stake    int64
		american int
		expected int64
	}{
		{name: "underdog +150", stake: 10000, american: 150, expected: 25000},
		{name: "favorite -110", stake: 11000, american: -110, expected: 21000},
		{name: "even +100", stake: 5000, american: 100, expected: 10000},
		{name: "even -100", stake: 5000, american: -100, expected: 10000},
		{name: "heavy favorite -400", stake: 20000, american: -400, expected: 25000},
		{name: "longshot +1200", stake: 1000, american: 1200, expected: 13000},
		{name: "rounds to nearest cent", stake: 1001, american: 133, expected: 1001 + 1331},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PotentialReturnCents(tt.stake, tt.american)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPotentialReturnCentsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		stake    int64
		american int
	}{
		{name: "zero stake", stake: 0, american: 150},
		{name: "negative stake", stake: -500, american: 150},
		{name: "zero odds", stake: 10000, american: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PotentialReturnCents(tt.stake, tt.american)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// Editar uma aposta recomputa o retorno a partir do stake/odds novos;
// o resultado tem que bater com uma chamada limpa, nunca com o valor antigo.
func TestPotentialReturnCentsRecomputeOnEdit(t *testing.T) {
	original, err := PotentialReturnCents(10000, 150)
	require.NoError(t, err)

	edited, err := PotentialReturnCents(20000, -110)
	require.NoError(t, err)

	fresh, err := PotentialReturnCents(20000, -110)
	require.NoError(t, err)
	assert.Equal(t, fresh, edited)
	assert.NotEqual(t, original, edited)
}

func TestAmericanToDecimal(t *testing.T) {
	tests := []struct {
		american int
		expected float64
	}{
		{american: 150, expected: 2.5},
		{american: -200, expected: 1.5},
		{american: 100, expected: 2.0},
		{american: -100, expected: 2.0},
	}

	for _, tt := range tests {
		got, err := AmericanToDecimal(tt.american)
		require.NoError(t, err)
		assert.InDelta(t, tt.expected, got, 1e-9)
	}

	_, err := AmericanToDecimal(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestImpliedProbability(t *testing.T) {
	p, err := ImpliedProbability(100)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-9)

	p, err = ImpliedProbability(-300)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, p, 1e-9)
}

func TestFormatAmerican(t *testing.T) {
	assert.Equal(t, "+150", FormatAmerican(150))
	assert.Equal(t, "-110", FormatAmerican(-110))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$250.00", FormatUSD(25000))
	assert.Equal(t, "$0.05", FormatUSD(5))
	assert.Equal(t, "-$12.34", FormatUSD(-1234))
}
