package betmath

import "fmt"

// GameStatus é o estado de um jogo no feed de placar.
type GameStatus string

const (
	StatusNotStarted GameStatus = "not_started"
	StatusInProgress GameStatus = "in_progress"
	StatusFinal      GameStatus = "final"
)

// LiveGame é o snapshot de placar usado pelo detector de hedge.
type LiveGame struct {
	Status    GameStatus
	HomeScore int
	AwayScore int
}

// Quote é o recorte mínimo de um contrato de mercado: melhor ask do lado
// yes em cents (0-100), nil quando o book não tem liquidez.
type Quote struct {
	YesAsk *int
}

// HedgeSignal é a recomendação de hedge para um jogo ao vivo.
type HedgeSignal struct {
	Side   string // "yes" | "no"
	Reason string
}

const (
	// Diferença máxima de placar para considerar o jogo "fechado".
	hedgeMaxScoreDiff = 10
	// 50 cents ~ 50% de probabilidade implícita.
	hedgeMidpointCents = 50
)

// DetectHedge sinaliza oportunidade de hedge quando o placar ao vivo e o
// favorito implícito do mercado divergem em um jogo apertado.
//
// Só considera jogos in_progress com diferença de placar <= 10. O mercado
// "favorece o mandante" quando yes_ask existe e passa de 50 cents. O lado
// recomendado é "yes" com o mandante na frente e "no" caso contrário — o
// mapeamento não sabe qual lado do contrato corresponde ao mandante e é
// mantido assim de propósito.
//
// Retorna nil quando não há sinal; nunca falha.
func DetectHedge(live LiveGame, q Quote) *HedgeSignal {
	if live.Status != StatusInProgress {
		return nil
	}
	diff := live.HomeScore - live.AwayScore
	if diff < 0 {
		diff = -diff
	}
	if diff > hedgeMaxScoreDiff {
		return nil
	}

	homeWinningGame := live.HomeScore > live.AwayScore
	marketFavorsHome := q.YesAsk != nil && *q.YesAsk > hedgeMidpointCents
	if homeWinningGame == marketFavorsHome {
		return nil
	}

	side := "no"
	baseline := "away team leads or game is tied"
	if homeWinningGame {
		side = "yes"
		baseline = "home team leads"
	}
	return &HedgeSignal{
		Side: side,
		Reason: fmt.Sprintf("%s %d-%d but market prices the opposite side",
			baseline, live.HomeScore, live.AwayScore),
	}
}
