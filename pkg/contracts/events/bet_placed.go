package events

// Perna de parlay dentro do evento bet_placed.
type PlacedLeg struct {
	GameID       string `json:"game_id"`
	Selection    string `json:"selection"` // "home" | "away"
	Description  string `json:"description"`
	AmericanOdds int    `json:"american_odds"`
}

type BetPlaced struct {
	BetID                string      `json:"bet_id"`
	UserID               string      `json:"user_id"`
	GameID               string      `json:"game_id"`
	Market               string      `json:"market"`
	Selection            string      `json:"selection"`
	StakeCents           int64       `json:"stake_cents"`
	AmericanOdds         int         `json:"american_odds"`
	PotentialReturnCents int64       `json:"potential_return_cents"`
	Legs                 []PlacedLeg `json:"legs,omitempty"` // vazio em aposta simples
	ReservedRef          string      `json:"reserved_ref"`   // external_ref usado na reserva da carteira (betID)
	TsUnixMs             int64       `json:"ts_unix_ms"`
}
