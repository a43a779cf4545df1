package dto

type ReserveResponse struct {
	ReservationID string `json:"reservation_id"`
	Status        string `json:"status"` // PENDING
}
