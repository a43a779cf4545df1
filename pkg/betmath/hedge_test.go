package betmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cents(v int) *int { return &v }

func TestDetectHedgeAgreementNoSignal(t *testing.T) {
	// Mandante na frente e mercado acima de 50c: placar e mercado concordam.
	live := LiveGame{Status: StatusInProgress, HomeScore: 55, AwayScore: 50}
	assert.Nil(t, DetectHedge(live, Quote{YesAsk: cents(60)}))
}

func TestDetectHedgeDisagreementFavorsYes(t *testing.T) {
	// Mandante na frente mas mercado abaixo de 50c: sinal no lado yes.
	live := LiveGame{Status: StatusInProgress, HomeScore: 55, AwayScore: 50}
	sig := DetectHedge(live, Quote{YesAsk: cents(40)})
	require.NotNil(t, sig)
	assert.Equal(t, "yes", sig.Side)
	assert.NotEmpty(t, sig.Reason)
}

func TestDetectHedgeDisagreementFavorsNo(t *testing.T) {
	// Visitante na frente mas mercado precifica o mandante: sinal no lado no.
	live := LiveGame{Status: StatusInProgress, HomeScore: 48, AwayScore: 52}
	sig := DetectHedge(live, Quote{YesAsk: cents(65)})
	require.NotNil(t, sig)
	assert.Equal(t, "no", sig.Side)
}

func TestDetectHedgeScoreDiffAboveThreshold(t *testing.T) {
	live := LiveGame{Status: StatusInProgress, HomeScore: 90, AwayScore: 75}
	assert.Nil(t, DetectHedge(live, Quote{YesAsk: cents(20)}))
	assert.Nil(t, DetectHedge(live, Quote{YesAsk: cents(80)}))
}

func TestDetectHedgeDiffExactlyAtThreshold(t *testing.T) {
	live := LiveGame{Status: StatusInProgress, HomeScore: 60, AwayScore: 50}
	sig := DetectHedge(live, Quote{YesAsk: cents(40)})
	require.NotNil(t, sig)
	assert.Equal(t, "yes", sig.Side)
}

func TestDetectHedgeGameNotInProgress(t *testing.T) {
	q := Quote{YesAsk: cents(40)}
	assert.Nil(t, DetectHedge(LiveGame{Status: StatusNotStarted, HomeScore: 0, AwayScore: 0}, q))
	assert.Nil(t, DetectHedge(LiveGame{Status: StatusFinal, HomeScore: 101, AwayScore: 99}, q))
}

func TestDetectHedgeMissingAsk(t *testing.T) {
	// Sem yes_ask o mercado não favorece o mandante; jogo empatado também não.
	live := LiveGame{Status: StatusInProgress, HomeScore: 50, AwayScore: 50}
	assert.Nil(t, DetectHedge(live, Quote{}))

	// Mandante na frente sem preço disponível: divergência, sinal yes.
	live.HomeScore = 51
	sig := DetectHedge(live, Quote{})
	require.NotNil(t, sig)
	assert.Equal(t, "yes", sig.Side)
}

func TestDetectHedgeMidpointNotFavoringHome(t *testing.T) {
	// 50c exato não passa do ponto médio; mandante na frente diverge.
	live := LiveGame{Status: StatusInProgress, HomeScore: 52, AwayScore: 50}
	sig := DetectHedge(live, Quote{YesAsk: cents(50)})
	require.NotNil(t, sig)
	assert.Equal(t, "yes", sig.Side)
}
