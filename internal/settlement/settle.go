package settlement

import "github.com/radieske/nba-bet-dashboard-poc/pkg/betmath"

// WinnerSide devolve "home" ou "away" pelo placar final.
// Placar empatado devolve "" (não acontece na NBA; tratado como push).
func WinnerSide(homeScore, awayScore int) string {
	switch {
	case homeScore > awayScore:
		return "home"
	case awayScore > homeScore:
		return "away"
	default:
		return ""
	}
}

// LegResultFor resolve o resultado de uma perna contra o vencedor do jogo.
// Empate mantém a perna pendente.
func LegResultFor(selection, winner string) betmath.LegResult {
	if winner == "" {
		return betmath.LegPending
	}
	if selection == winner {
		return betmath.LegWon
	}
	return betmath.LegLost
}

// SettleSingle liquida uma aposta simples pelo placar final.
func SettleSingle(selection string, homeScore, awayScore int) betmath.BetOutcome {
	winner := WinnerSide(homeScore, awayScore)
	if winner == "" {
		return betmath.OutcomePush
	}
	if selection == winner {
		return betmath.OutcomeWin
	}
	return betmath.OutcomeLoss
}

// ActualReturnCents calcula o retorno efetivo da aposta liquidada:
// win paga o potencial, push devolve o stake, loss paga zero.
func ActualReturnCents(outcome betmath.BetOutcome, stakeCents, potentialCents int64) int64 {
	switch outcome {
	case betmath.OutcomeWin:
		return potentialCents
	case betmath.OutcomePush:
		return stakeCents
	default:
		return 0
	}
}
