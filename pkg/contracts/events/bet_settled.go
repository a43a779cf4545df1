package events

import "time"

// Evento emitido pelo settlement-worker após liquidar uma aposta.
type BetSettled struct {
	BetID             string    `json:"betId"`
	UserID            string    `json:"userId"`
	GameID            string    `json:"gameId"`
	Outcome           string    `json:"outcome"` // "win" | "loss" | "push"
	ActualReturnCents int64     `json:"actualReturnCents"`
	Ts                time.Time `json:"ts"`
}
