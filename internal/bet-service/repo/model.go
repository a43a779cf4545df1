package repo

import "time"

// Bet é o modelo persistido no Postgres.
// Editável (stake, odds, descrição) e deletável apenas enquanto pending;
// liquida exatamente uma vez.
type Bet struct {
	ID                   string
	UserID               string
	GameID               string
	Market               string
	Selection            string
	Description          string
	StakeCents           int64
	AmericanOdds         int
	Outcome              string // pending | win | loss | push
	PotentialReturnCents int64
	ActualReturnCents    *int64 // nil até a liquidação
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ParlayLeg pertence a exatamente uma aposta. As pernas nascem com a aposta
// e nunca são adicionadas depois; o resultado de cada uma é atualizado
// conforme os jogos terminam.
type ParlayLeg struct {
	ID           string
	BetID        string
	GameID       string
	Selection    string
	Description  string
	AmericanOdds int
	Result       string // pending | won | lost
	LegIndex     int    // preserva a ordem de criação
}
