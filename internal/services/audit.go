package services

import (
	"context"
	"log/slog"
	"time"

	"lnkshrt/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditService writes audit entries from a background worker so request
// handlers never block on audit I/O. Entries carry identifiers only, never
// credentials or hashes.
type AuditService struct {
	db      *gorm.DB
	logger  *slog.Logger
	entries chan models.AuditLog
}

func NewAuditService(db *gorm.DB, logger *slog.Logger) *AuditService {
	return &AuditService{
		db:      db,
		logger:  logger,
		entries: make(chan models.AuditLog, 100),
	}
}

func (s *AuditService) Start(ctx context.Context) {
	s.logger.Info("Audit worker starting")
	for {
		select {
		case entry := <-s.entries:
			if err := s.db.Create(&entry).Error; err != nil {
				s.logger.Error("Failed to write audit log", "error", err)
			}
		case <-ctx.Done():
			s.logger.Info("Audit worker stopping")
			return
		}
	}
}

func (s *AuditService) LogAction(userID *uuid.UUID, action, entityID, ip string) {
	entry := models.AuditLog{
		UserID:    userID,
		Action:    action,
		EntityID:  entityID,
		IPAddress: ip,
		Timestamp: time.Now(),
	}

	select {
	case s.entries <- entry:
	default:
		s.logger.Warn("Audit channel full, dropping entry", "action", action)
	}
}
