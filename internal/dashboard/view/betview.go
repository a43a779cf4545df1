package view

import (
	"time"

	"github.com/radieske/nba-bet-dashboard-poc/internal/dashboard/dto"
	"github.com/radieske/nba-bet-dashboard-poc/internal/dashboard/repo"
	"github.com/radieske/nba-bet-dashboard-poc/pkg/betmath"
)

// Bet monta a aposta do histórico: valores formatados em dólar, odds com
// sinal e, em parlays, o resultado exibido de cada perna vindo do agregador
// (perna só mostra won/lost depois que a aposta liquida; os contadores usam
// sempre o resultado persistido).
func Bet(b repo.Bet, legs []repo.BetLeg) dto.BetView {
	v := dto.BetView{
		BetID:           b.ID,
		GameID:          b.GameID,
		Market:          b.Market,
		Selection:       b.Selection,
		Description:     b.Description,
		Stake:           betmath.FormatUSD(b.StakeCents),
		StakeCents:      b.StakeCents,
		AmericanOdds:    betmath.FormatAmerican(b.AmericanOdds),
		Outcome:         b.Outcome,
		PotentialReturn: betmath.FormatUSD(b.PotentialReturnCents),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
	if b.ActualReturnCents != nil {
		v.ActualReturn = betmath.FormatUSD(*b.ActualReturnCents)
	}

	results := make([]betmath.LegResult, 0, len(legs))
	for _, l := range legs {
		results = append(results, betmath.LegResult(l.Result))
	}
	summary := betmath.AggregateParlay(results, betmath.BetOutcome(b.Outcome))
	if summary == nil {
		return v // aposta simples
	}

	v.WonCount = summary.WonCount
	v.LostCount = summary.LostCount
	v.TotalCount = summary.TotalCount
	v.Legs = make([]dto.BetLegView, 0, len(legs))
	for i, l := range legs {
		v.Legs = append(v.Legs, dto.BetLegView{
			GameID:        l.GameID,
			Selection:     l.Selection,
			Description:   l.Description,
			AmericanOdds:  betmath.FormatAmerican(l.AmericanOdds),
			DisplayResult: string(summary.PerLeg[i]),
		})
	}
	return v
}

func Bets(bets []repo.Bet, legsByBet map[string][]repo.BetLeg) []dto.BetView {
	out := make([]dto.BetView, 0, len(bets))
	for _, b := range bets {
		out = append(out, Bet(b, legsByBet[b.ID]))
	}
	return out
}
