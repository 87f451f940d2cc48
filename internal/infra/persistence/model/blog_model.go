package model

import (
	"time"

	"github.com/google/uuid"
)

// BlogModel is the GORM-specific struct for the 'blogs' table.
type BlogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Thumbnail    string    `gorm:"type:text;not null;default:''"`
	Content      string    `gorm:"type:text;not null"`
	PlainContent string    `gorm:"type:text;not null;default:''"`
	Status       string    `gorm:"type:varchar(20);not null;index:idx_blogs_status"`
	AuthorEmail  string    `gorm:"type:varchar(320);not null;default:''"`
	CreatedAt    time.Time `gorm:"index:idx_blogs_created_at,sort:desc"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}
