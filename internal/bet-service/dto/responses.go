package dto

type ParlayLegResponse struct {
	LegID        string `json:"legId"`
	GameID       string `json:"gameId"`
	Selection    string `json:"selection"`
	Description  string `json:"description"`
	AmericanOdds int    `json:"american_odds"`
	Result       string `json:"result"` // pending | won | lost
}

type BetResponse struct {
	BetID                string              `json:"betId"`
	UserID               string              `json:"userId"`
	GameID               string              `json:"gameId"`
	Market               string              `json:"market"`
	Selection            string              `json:"selection"`
	Description          string              `json:"description"`
	StakeCents           int64               `json:"stake_cents"`
	AmericanOdds         int                 `json:"american_odds"`
	Outcome              string              `json:"outcome"` // pending | win | loss | push
	PotentialReturnCents int64               `json:"potential_return_cents"`
	ActualReturnCents    *int64              `json:"actual_return_cents,omitempty"`
	Legs                 []ParlayLegResponse `json:"legs,omitempty"`
	CreatedAt            string              `json:"createdAt"`
}

type PlaceBetResponse struct {
	BetID                string `json:"betId"`
	Outcome              string `json:"outcome"` // sempre "pending" na criação
	PotentialReturnCents int64  `json:"potential_return_cents"`
	Message              string `json:"message,omitempty"`
}
