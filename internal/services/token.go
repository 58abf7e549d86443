package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"lnkshrt/internal/models"
	"lnkshrt/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// tokenPrefixLen is the length of the standard-base64 encoding of a 16-byte
// user ID, which prefixes every issued token.
const tokenPrefixLen = 24

// tokenSecretBytes is the entropy of the random token payload.
const tokenSecretBytes = 32

type TokenService struct {
	db *gorm.DB
}

func NewTokenService(db *gorm.DB) *TokenService {
	return &TokenService{db: db}
}

// Issue creates a bearer token for the given user and persists its Argon2
// hash. The token embeds the user ID so validation only has to scan that
// user's stored hashes. The plaintext is returned exactly once; it is never
// stored or logged.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	secret, err := utils.RandomURLSafe(tokenSecretBytes)
	if err != nil {
		return "", err
	}
	token := base64.StdEncoding.EncodeToString(userID[:]) + secret

	tokenHash, err := utils.HashString(token)
	if err != nil {
		return "", err
	}

	entry := models.Token{UserID: userID, TokenHash: tokenHash}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	return token, nil
}

// Validate resolves a presented bearer token to the owning user's ID. Every
// failure mode (too short, undecodable prefix, unknown user, no matching
// hash) collapses to ErrUnauthorized so callers cannot distinguish them.
func (s *TokenService) Validate(ctx context.Context, token string) (uuid.UUID, error) {
	if len(token) < tokenPrefixLen {
		return uuid.Nil, ErrUnauthorized
	}

	rawID, err := base64.StdEncoding.DecodeString(token[:tokenPrefixLen])
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	userID, err := uuid.FromBytes(rawID)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}

	var tokens []models.Token
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&tokens).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to load tokens: %w", err)
	}

	for _, stored := range tokens {
		if utils.VerifyHash(token, stored.TokenHash) {
			return userID, nil
		}
	}

	return uuid.Nil, ErrUnauthorized
}
