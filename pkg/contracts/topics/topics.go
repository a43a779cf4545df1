package topics

const (
	// Feeds externos
	ScoreUpdates = "score_updates"
	MarketQuotes = "market_quotes"

	// Jogos encerrados (gatilho da liquidação)
	GameFinals = "game_finals"

	// Bets
	BetPlaced  = "bet_placed"
	BetSettled = "bet_settled"

	// DLQs
	GameFinalsDLQ = "game_finals_dlq"
)
