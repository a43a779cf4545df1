package betmath

// BetOutcome é o resultado de uma aposta (simples ou parlay).
type BetOutcome string

const (
	OutcomePending BetOutcome = "pending"
	OutcomeWin     BetOutcome = "win"
	OutcomeLoss    BetOutcome = "loss"
	OutcomePush    BetOutcome = "push"
)

// LegResult é o resultado individual de uma perna de parlay.
type LegResult string

const (
	LegPending LegResult = "pending"
	LegWon     LegResult = "won"
	LegLost    LegResult = "lost"
)

// ParlaySummary é o estado de exibição de um parlay.
// PerLeg preserva a ordem de entrada das pernas.
type ParlaySummary struct {
	PerLeg     []LegResult
	WonCount   int
	LostCount  int
	TotalCount int
}

// AggregateParlay agrega os resultados das pernas com o resultado da aposta.
// Retorna nil para lista vazia ("não é parlay"); o chamador suprime a UI de
// parlay nesse caso, nunca renderiza um agregado com zero pernas.
//
// Regra de exibição: uma perna aparece como "pending" enquanto o resultado
// dela estiver pendente OU enquanto a aposta como um todo ainda não liquidou.
// Won/LostCount contam sempre os resultados brutos das pernas, mesmo enquanto
// a exibição individual segura "pending" até a liquidação.
func AggregateParlay(legs []LegResult, outcome BetOutcome) *ParlaySummary {
	if len(legs) == 0 {
		return nil
	}

	s := &ParlaySummary{
		PerLeg:     make([]LegResult, len(legs)),
		TotalCount: len(legs),
	}
	for i, r := range legs {
		switch r {
		case LegWon:
			s.WonCount++
		case LegLost:
			s.LostCount++
		}

		if outcome == OutcomePending || (r != LegWon && r != LegLost) {
			s.PerLeg[i] = LegPending
			continue
		}
		s.PerLeg[i] = r
	}
	return s
}

// ConsistentOutcome deriva o resultado de um parlay a partir das pernas:
// win somente se todas ganharam, loss se qualquer perna perdeu, pending
// caso contrário. Mantém o invariante aposta <-> pernas na liquidação.
func ConsistentOutcome(legs []LegResult) BetOutcome {
	if len(legs) == 0 {
		return OutcomePending
	}
	allWon := true
	for _, r := range legs {
		switch r {
		case LegLost:
			return OutcomeLoss
		case LegWon:
			// segue
		default:
			allWon = false
		}
	}
	if allWon {
		return OutcomeWin
	}
	return OutcomePending
}
