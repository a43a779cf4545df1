package kalshi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client consulta a trade API pública da Kalshi (somente leitura).
// O rate limiter respeita o limite de requisições do tier básico.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	limiter *rate.Limiter
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(10), 5), // 10 req/s, burst 5
	}
}

// Market é o shape retornado por GET /markets.
// Preços em cents; zero significa lado sem liquidez no book.
type Market struct {
	Ticker       string    `json:"ticker"`
	EventTicker  string    `json:"event_ticker"`
	Title        string    `json:"title"`
	YesBid       int       `json:"yes_bid"`
	YesAsk       int       `json:"yes_ask"`
	NoBid        int       `json:"no_bid"`
	NoAsk        int       `json:"no_ask"`
	Volume       int64     `json:"volume"`
	OpenInterest int64     `json:"open_interest"`
	Liquidity    int64     `json:"liquidity"`
	Status       string    `json:"status"`
	CloseTime    time.Time `json:"close_time"`
}

type marketsResponse struct {
	Markets []Market `json:"markets"`
	Cursor  string   `json:"cursor"`
}

// Markets lista os mercados abertos de uma série (ex: KXNBA), paginando
// pelo cursor até esgotar.
func (c *Client) Markets(ctx context.Context, seriesTicker string) ([]Market, error) {
	var out []Market
	cursor := ""
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		q := url.Values{}
		q.Set("series_ticker", seriesTicker)
		q.Set("status", "open")
		q.Set("limit", "100")
		if cursor != "" {
			q.Set("cursor", cursor)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/markets?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		res, err := c.HTTP.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, fmt.Errorf("kalshi markets http %d", res.StatusCode)
		}

		var page marketsResponse
		err = json.NewDecoder(res.Body).Decode(&page)
		res.Body.Close()
		if err != nil {
			return nil, err
		}

		out = append(out, page.Markets...)
		if page.Cursor == "" || len(page.Markets) == 0 {
			return out, nil
		}
		cursor = page.Cursor
	}
}

// GameIDFromEventTicker extrai o identificador do jogo do event ticker.
// Ex: "KXNBAGAME-25AUG29LALBOS" -> "25AUG29LALBOS". O simulador de placar
// emite game_ids nesse mesmo formato, o que permite o join no dashboard.
func GameIDFromEventTicker(eventTicker string) string {
	if i := strings.Index(eventTicker, "-"); i >= 0 {
		return eventTicker[i+1:]
	}
	return eventTicker
}
