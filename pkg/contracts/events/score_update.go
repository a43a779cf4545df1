package events

import "time"

// Status possíveis de um jogo no feed de placar.
const (
	GameNotStarted = "not_started"
	GameInProgress = "in_progress"
	GameFinal      = "final"
)

// Evento publicado no tópico "score_updates" a cada mudança de placar.
type ScoreUpdate struct {
	GameID    string    `json:"game_id"`
	HomeTeam  string    `json:"home_team"` // tricode, ex: "BOS"
	AwayTeam  string    `json:"away_team"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
	Status    string    `json:"status"` // not_started | in_progress | final
	Period    int       `json:"period"`
	Clock     string    `json:"clock"` // ex: "07:42"
	UpdatedAt time.Time `json:"updated_at"`
	Source    string    `json:"source"`
}
