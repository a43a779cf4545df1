package events

import "time"

// Evento emitido pelo feed-processor quando um jogo chega a "final".
// O settlement-worker consome este tópico para liquidar as apostas.
type GameFinalized struct {
	GameID    string    `json:"game_id"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
	Ts        time.Time `json:"ts"`
}
