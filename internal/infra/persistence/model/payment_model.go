package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel is the GORM-specific struct for the 'payments' table.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(320);not null"`
	Amount        float64   `gorm:"type:numeric(12,2);not null"`
	Currency      string    `gorm:"type:varchar(3);not null"`
	TransactionID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Message       string    `gorm:"type:text;not null;default:''"`
	PaymentMethod string    `gorm:"type:varchar(50);not null"`
	CreatedAt     time.Time `gorm:"index:idx_payments_created_at,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}

// All lists every model, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&DonationRequestModel{},
		&BlogModel{},
		&PaymentModel{},
	}
}
