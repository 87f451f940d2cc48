package entity

import "time"

// Payment is one completed funding transaction, recorded only after the
// processor confirmed the charge.
type Payment struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	TransactionID string    `json:"transactionId"`
	Message       string    `json:"message,omitempty"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}
