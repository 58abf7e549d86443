package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"lnkshrt/internal/models"
	"lnkshrt/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// shortCodeBytes gives 6 URL-safe characters (32 bits) per random code.
const shortCodeBytes = 4

// CodeRequest selects between a random short code and a caller-supplied
// alias. Use RandomCode or CustomCode to construct one.
type CodeRequest struct {
	alias    string
	isCustom bool
}

func RandomCode() CodeRequest {
	return CodeRequest{}
}

func CustomCode(alias string) CodeRequest {
	return CodeRequest{alias: alias, isCustom: true}
}

type ShortenerService struct {
	db           *gorm.DB
	auditService *AuditService
}

func NewShortenerService(db *gorm.DB, auditService *AuditService) *ShortenerService {
	return &ShortenerService{db: db, auditService: auditService}
}

// NormalizeScheme returns the URL with an explicit allowed scheme: a bare
// URL gets https prepended, http/https pass through, anything else is
// rejected with ErrInvalidScheme.
func NormalizeScheme(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", ErrInvalidScheme
	}
	switch parsed.Scheme {
	case "http", "https":
		return rawURL, nil
	case "":
		return "https://" + rawURL, nil
	default:
		return "", ErrInvalidScheme
	}
}

// encodeCode percent-encodes a short code so it is safe as a URL path
// segment. Applied both at creation and at lookup so the two stay
// symmetric.
func encodeCode(code string) string {
	return url.QueryEscape(code)
}

// CreateLink normalizes the target URL, picks the short code, and inserts
// the link. Uniqueness is left to the short_url constraint: a duplicate
// (random or custom) is reported as ErrConflict without retrying, so two
// concurrent creators racing for the same code get exactly one success.
func (s *ShortenerService) CreateLink(ctx context.Context, userID uuid.UUID, rawURL string, code CodeRequest) (*models.Link, error) {
	originalURL, err := NormalizeScheme(rawURL)
	if err != nil {
		return nil, err
	}

	var shortURL string
	if code.isCustom {
		shortURL = encodeCode(code.alias)
	} else {
		shortURL, err = utils.RandomURLSafe(shortCodeBytes)
		if err != nil {
			return nil, err
		}
	}

	link := models.Link{
		OriginalURL: originalURL,
		ShortURL:    shortURL,
		UserID:      userID,
	}

	if err := s.db.WithContext(ctx).Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to store link: %w", err)
	}

	s.auditService.LogAction(&userID, "CREATE_LINK", link.ShortURL, "")

	return &link, nil
}

// Resolve looks up a link by its short code. Pure read: no auth, no side
// effects, and no caching, so a deleted link stops resolving immediately.
func (s *ShortenerService) Resolve(ctx context.Context, code string) (*models.Link, error) {
	var link models.Link
	err := s.db.WithContext(ctx).Where("short_url = ?", encodeCode(code)).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up link: %w", err)
	}
	return &link, nil
}

// Delete removes a link owned by userID. The ownership check runs inside
// the same transaction as the delete so it cannot go stale between check
// and removal.
func (s *ShortenerService) Delete(ctx context.Context, userID uuid.UUID, code string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var link models.Link
		if err := tx.Where("short_url = ?", encodeCode(code)).First(&link).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to look up link: %w", err)
		}

		if link.UserID != userID {
			return ErrForbidden
		}

		return tx.Delete(&link).Error
	})
	if err != nil {
		return err
	}

	s.auditService.LogAction(&userID, "DELETE_LINK", encodeCode(code), "")
	return nil
}
