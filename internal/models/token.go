package models

import (
	"time"

	"github.com/google/uuid"
)

// Token stores only the Argon2 hash of an issued bearer token. The
// plaintext is returned to the client once at issuance and never persisted.
type Token struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash string    `gorm:"unique;not null;size:255" json:"-"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}
