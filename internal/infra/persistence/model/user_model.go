// Package model holds the GORM table structs of the relational backend.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email      string    `gorm:"type:varchar(320);not null;uniqueIndex"`
	Name       string    `gorm:"type:varchar(255);not null;default:''"`
	Avatar     string    `gorm:"type:text;not null;default:''"`
	Role       string    `gorm:"type:varchar(20);not null;default:''"`
	Status     string    `gorm:"type:varchar(20);not null;default:''"`
	BloodGroup string    `gorm:"type:varchar(3);not null;default:''"`
	District   string    `gorm:"type:varchar(100);not null;default:''"`
	Upazila    string    `gorm:"type:varchar(100);not null;default:''"`
	CreatedAt  time.Time `gorm:"index:idx_users_created_at,sort:desc"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
