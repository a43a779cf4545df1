package dto

// ParlayLegRequest é uma perna enviada na criação de um parlay.
type ParlayLegRequest struct {
	GameID       string `json:"gameId"`
	Selection    string `json:"selection"` // "home" | "away"
	Description  string `json:"description"`
	AmericanOdds int    `json:"american_odds"`
}

type PlaceBetRequest struct {
	UserID       string             `json:"userId"`
	GameID       string             `json:"gameId"`
	Market       string             `json:"market"`    // ex: "MONEYLINE", "PARLAY"
	Selection    string             `json:"selection"` // "home" | "away" (vazio em parlay)
	Description  string             `json:"description"`
	StakeCents   int64              `json:"stake_cents"`
	AmericanOdds int                `json:"american_odds"` // odds combinadas no caso de parlay
	Legs         []ParlayLegRequest `json:"legs,omitempty"`
}

// UpdateBetRequest edita uma aposta ainda pendente.
// Campos nil mantêm o valor atual; o retorno potencial é sempre recalculado.
type UpdateBetRequest struct {
	StakeCents   *int64  `json:"stake_cents,omitempty"`
	AmericanOdds *int    `json:"american_odds,omitempty"`
	Description  *string `json:"description,omitempty"`
}
