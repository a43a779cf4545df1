package ws

// ClientMsg é a mensagem recebida do cliente WebSocket
// Type: subscribe | unsubscribe | ping
// GameID: obrigatório para subscribe/unsubscribe
type ClientMsg struct {
	Type   string `json:"type"`
	GameID string `json:"gameId"`
}

// DashboardUpdate é o envelope enviado aos clientes inscritos.
// Kind distingue o tipo de payload: "score" | "quote"
type DashboardUpdate struct {
	GameID  string      `json:"gameId"`
	Kind    string      `json:"kind"`
	Payload interface{} `json:"payload"`
}
