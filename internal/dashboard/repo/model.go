package repo

import "time"

type Game struct {
	GameID    string
	HomeTeam  string
	AwayTeam  string
	HomeScore int
	AwayScore int
	Status    string // not_started | in_progress | final
	Period    int
	Clock     string
	UpdatedAt time.Time
}

type Recommendation struct {
	GameID        string
	Market        string
	Pick          string
	EdgePct       *float64
	EVPct         *float64
	Confidence    *float64
	SharpMoneyPct *float64
	Model         string
	Rationale     string
	CreatedAt     time.Time
}

type MarketQuote struct {
	Ticker       string
	GameID       string
	Title        string
	YesBid       *int
	YesAsk       *int
	NoBid        *int
	NoAsk        *int
	Volume       int64
	OpenInterest int64
	Liquidity    int64
	Status       string
	CloseTime    *time.Time
	UpdatedAt    time.Time
}

type PlayerSeasonStats struct {
	PlayerID string
	Name     string
	Team     string
	Points   float64
	Rebounds float64
	Assists  float64
	UsagePct float64
	Season   string
}

// Bet/BetLeg são a visão de leitura das apostas do usuário
// (a escrita é do bet-service; aqui só montamos o histórico).
type Bet struct {
	ID                   string
	UserID               string
	GameID               string
	Market               string
	Selection            string
	Description          string
	StakeCents           int64
	AmericanOdds         int
	Outcome              string
	PotentialReturnCents int64
	ActualReturnCents    *int64
	CreatedAt            time.Time
}

type BetLeg struct {
	BetID        string
	GameID       string
	Selection    string
	Description  string
	AmericanOdds int
	Result       string // pending | won | lost
	LegIndex     int
}
