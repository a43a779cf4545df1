package dto

// GameView é o estado atual de um jogo exibido no dashboard.
type GameView struct {
	GameID    string `json:"gameId"`
	HomeTeam  string `json:"homeTeam"` // tricode, ex: "LAL"
	AwayTeam  string `json:"awayTeam"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	Status    string `json:"status"` // not_started | in_progress | final
	Period    int    `json:"period"`
	Clock     string `json:"clock"`
	UpdatedAt string `json:"updatedAt"`
}

// RecommendationView é um palpite do modelo com os selos de classificação
// já resolvidos (o front nunca recalcula faixas).
type RecommendationView struct {
	GameID        string   `json:"gameId"`
	Market        string   `json:"market"`
	Pick          string   `json:"pick"`
	EdgePct       *float64 `json:"edge_pct,omitempty"`
	EVPct         *float64 `json:"ev_pct,omitempty"`
	Confidence    *float64 `json:"confidence,omitempty"`
	SharpMoneyPct *float64 `json:"sharp_money_pct,omitempty"`
	Model         string   `json:"model"`
	Rationale     string   `json:"rationale,omitempty"`
	CreatedAt     string   `json:"createdAt"`

	EdgeBand       string `json:"edgeBand"`  // strong | moderate | slight | negative | none
	EdgeLabel      string `json:"edgeLabel"` // "Strong Value", ...
	EVBand         string `json:"evBand"`
	EVLabel        string `json:"evLabel"`
	ConfidenceTier string `json:"confidenceTier"` // high | medium | low | none
	SharpMoneyTier string `json:"sharpMoneyTier"`
}

// MarketQuoteView é a última cotação Kalshi conhecida de um mercado.
type MarketQuoteView struct {
	Ticker       string `json:"ticker"`
	GameID       string `json:"gameId"`
	Title        string `json:"title"`
	YesBid       *int   `json:"yes_bid,omitempty"` // cents 0..100
	YesAsk       *int   `json:"yes_ask,omitempty"`
	NoBid        *int   `json:"no_bid,omitempty"`
	NoAsk        *int   `json:"no_ask,omitempty"`
	Volume       int64  `json:"volume"`
	OpenInterest int64  `json:"open_interest"`
	Liquidity    int64  `json:"liquidity"`
	Status       string `json:"status"` // open | closed
	CloseTime    string `json:"close_time,omitempty"`
	UpdatedAt    string `json:"updatedAt"`
}

// HedgeView é uma divergência placar x mercado detectada em jogo ao vivo.
type HedgeView struct {
	GameID    string `json:"gameId"`
	Ticker    string `json:"ticker"`
	Title     string `json:"title"`
	Side      string `json:"side"` // "yes" | "no"
	Reason    string `json:"reason"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	YesAsk    *int   `json:"yes_ask,omitempty"`
}

// PropRecommendationView ranqueia jogadores por prop score.
type PropRecommendationView struct {
	PlayerID  string  `json:"playerId"`
	Name      string  `json:"name"`
	Team      string  `json:"team"`
	Points    float64 `json:"points"`
	Rebounds  float64 `json:"rebounds"`
	Assists   float64 `json:"assists"`
	UsagePct  float64 `json:"usage_pct"`
	Season    string  `json:"season"`
	PropScore float64 `json:"prop_score"`
}

// BetLegView é uma perna de parlay como aparece no histórico.
// DisplayResult aplica a regra de exibição: enquanto a aposta não liquidar,
// toda perna aparece pendente, independente do resultado persistido.
type BetLegView struct {
	GameID        string `json:"gameId"`
	Selection     string `json:"selection"`
	Description   string `json:"description"`
	AmericanOdds  string `json:"americanOdds"` // "+150" / "-110"
	DisplayResult string `json:"displayResult"`
}

// BetView é a aposta formatada para o histórico do usuário.
type BetView struct {
	BetID           string       `json:"betId"`
	GameID          string       `json:"gameId"`
	Market          string       `json:"market"`
	Selection       string       `json:"selection,omitempty"`
	Description     string       `json:"description,omitempty"`
	Stake           string       `json:"stake"` // "$100.00"
	StakeCents      int64        `json:"stake_cents"`
	AmericanOdds    string       `json:"americanOdds"`
	Outcome         string       `json:"outcome"` // pending | win | loss | push
	PotentialReturn string       `json:"potentialReturn"`
	ActualReturn    string       `json:"actualReturn,omitempty"` // vazio até liquidar
	Legs            []BetLegView `json:"legs,omitempty"`
	WonCount        int          `json:"wonCount"`
	LostCount       int          `json:"lostCount"`
	TotalCount      int          `json:"totalCount"`
	CreatedAt       string       `json:"createdAt"`
}
