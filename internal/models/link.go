package models

import (
	"time"

	"github.com/google/uuid"
)

type Link struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OriginalURL string    `gorm:"not null;type:text" json:"original_url"`
	ShortURL    string    `gorm:"unique;not null;size:255;index" json:"short_url"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName overrides the default pluralized name to match the schema.
func (Link) TableName() string {
	return "links"
}
