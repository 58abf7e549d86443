package handlers

import (
	"log/slog"

	"lnkshrt/internal/config"
	"lnkshrt/internal/services"

	"gorm.io/gorm"
)

type Handler struct {
	cfg              config.Config
	logger           *slog.Logger
	db               *gorm.DB
	shortenerService *services.ShortenerService
	tokenService     *services.TokenService
	auditService     *services.AuditService
	qrService        *services.QRService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	shortenerService *services.ShortenerService,
	tokenService *services.TokenService,
	auditService *services.AuditService,
	qrService *services.QRService,
) *Handler {
	return &Handler{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		shortenerService: shortenerService,
		tokenService:     tokenService,
		auditService:     auditService,
		qrService:        qrService,
	}
}
