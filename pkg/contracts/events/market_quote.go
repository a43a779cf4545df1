package events

import "time"

// Evento publicado no tópico "market_quotes" com o melhor bid/ask de um
// contrato Kalshi. Preços em cents (0-100); ponteiro nil quando o lado
// não tem liquidez no book.
type MarketQuote struct {
	Ticker       string    `json:"ticker"`
	GameID       string    `json:"game_id"`
	Title        string    `json:"title"`
	YesBid       *int      `json:"yes_bid,omitempty"`
	YesAsk       *int      `json:"yes_ask,omitempty"`
	NoBid        *int      `json:"no_bid,omitempty"`
	NoAsk        *int      `json:"no_ask,omitempty"`
	Volume       int64     `json:"volume"`
	OpenInterest int64     `json:"open_interest"`
	Liquidity    int64     `json:"liquidity"`
	Status       string    `json:"status"` // open | closed
	CloseTime    time.Time `json:"close_time"`
	UpdatedAt    time.Time `json:"updated_at"`
	Source       string    `json:"source"`
}
