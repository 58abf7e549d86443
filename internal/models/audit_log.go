package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nullable for failed login attempts
	Action    string     `gorm:"size:50;not null" json:"action"` // e.g., "SIGNUP", "LOGIN", "CREATE_LINK", "DELETE_LINK"
	EntityID  string     `gorm:"size:255" json:"entity_id"`      // ID of the object affected (e.g. short code or username)
	IPAddress string     `gorm:"size:45" json:"ip_address"`
	Timestamp time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"timestamp"`
}
