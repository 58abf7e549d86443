package services

import (
	"context"
	"encoding/base64"
	"testing"

	"lnkshrt/internal/models"
	"lnkshrt/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenIssueAndValidate(t *testing.T) {
	db := setupTestDB()
	service := NewTokenService(db)
	user := createTestUser(db, "tokenuser")
	ctx := context.Background()

	t.Run("Issued token validates to issuing user", func(t *testing.T) {
		token, err := service.Issue(ctx, user.ID)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		userID, err := service.Validate(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("Plaintext token is never persisted", func(t *testing.T) {
		token, err := service.Issue(ctx, user.ID)
		assert.NoError(t, err)

		var stored []models.Token
		assert.NoError(t, db.Where("user_id = ?", user.ID).Find(&stored).Error)
		assert.NotEmpty(t, stored)
		for _, entry := range stored {
			assert.NotEqual(t, token, entry.TokenHash)
			assert.Contains(t, entry.TokenHash, "$argon2id$")
		}
	})

	t.Run("Multiple concurrent tokens per user", func(t *testing.T) {
		first, err := service.Issue(ctx, user.ID)
		assert.NoError(t, err)
		second, err := service.Issue(ctx, user.ID)
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)

		for _, token := range []string{first, second} {
			userID, err := service.Validate(ctx, token)
			assert.NoError(t, err)
			assert.Equal(t, user.ID, userID)
		}
	})
}

func TestTokenValidateRejections(t *testing.T) {
	db := setupTestDB()
	service := NewTokenService(db)
	user := createTestUser(db, "victim")
	ctx := context.Background()

	token, err := service.Issue(ctx, user.ID)
	assert.NoError(t, err)

	t.Run("Empty token", func(t *testing.T) {
		_, err := service.Validate(ctx, "")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Garbage prefix", func(t *testing.T) {
		_, err := service.Validate(ctx, "!!!!not base64 at all, clearly!!!!")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Valid prefix with forged secret", func(t *testing.T) {
		forged := token[:tokenPrefixLen] + "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
		_, err := service.Validate(ctx, forged)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Token re-prefixed to another user", func(t *testing.T) {
		other := createTestUser(db, "other")
		spliced := base64.StdEncoding.EncodeToString(other.ID[:]) + token[tokenPrefixLen:]
		_, err := service.Validate(ctx, spliced)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Prefix of nonexistent user", func(t *testing.T) {
		ghost := uuid.New()
		secret, _ := utils.RandomURLSafe(tokenSecretBytes)
		_, err := service.Validate(ctx, base64.StdEncoding.EncodeToString(ghost[:])+secret)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}
