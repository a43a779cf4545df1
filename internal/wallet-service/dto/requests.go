package dto

type DepositRequest struct {
	UserID      string `json:"userId"`
	AmountCents int64  `json:"amount_cents"`
	ExternalRef string `json:"external_ref,omitempty"` // opcional p/ idempotência simples
}

type ReserveRequest struct {
	UserID      string `json:"userId"`
	AmountCents int64  `json:"amount_cents"`
	ExternalRef string `json:"external_ref"` // betId da aposta que originou a reserva
}

type CommitRequest struct {
	UserID      string `json:"userId"`
	ExternalRef string `json:"external_ref"`
}

type RefundRequest struct {
	UserID      string `json:"userId"`
	ExternalRef string `json:"external_ref"`
}

// PayoutRequest credita o retorno de uma aposta vencedora (ou push).
type PayoutRequest struct {
	UserID      string `json:"userId"`
	AmountCents int64  `json:"amount_cents"`
	BetID       string `json:"bet_id"`
}
