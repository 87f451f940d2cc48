package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationRequestModel is the GORM-specific struct for the 'donation_requests' table.
type DonationRequestModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RequesterName     string    `gorm:"type:varchar(255);not null"`
	RequesterEmail    string    `gorm:"type:varchar(320);not null;index:idx_donation_requests_requester"`
	RecipientName     string    `gorm:"type:varchar(255);not null"`
	RecipientDistrict string    `gorm:"type:varchar(100);not null"`
	RecipientUpazila  string    `gorm:"type:varchar(100);not null"`
	RecipientDivision string    `gorm:"type:varchar(100);not null;default:''"`
	HospitalName      string    `gorm:"type:varchar(255);not null"`
	FullAddress       string    `gorm:"type:text;not null"`
	BloodGroup        string    `gorm:"type:varchar(3);not null"`
	DonationDate      string    `gorm:"type:varchar(32);not null"`
	DonationTime      string    `gorm:"type:varchar(32);not null"`
	RequestMessage    string    `gorm:"type:text;not null;default:''"`
	Status            string    `gorm:"type:varchar(20);not null;index:idx_donation_requests_status"`
	DonorID           string    `gorm:"type:varchar(64);not null;default:''"`
	DonorName         string    `gorm:"type:varchar(255);not null;default:''"`
	DonorEmail        string    `gorm:"type:varchar(320);not null;default:'';index:idx_donation_requests_donor"`
	CreatedAt         time.Time `gorm:"index:idx_donation_requests_created_at,sort:desc"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonationRequestModel) TableName() string {
	return "donation_requests"
}
