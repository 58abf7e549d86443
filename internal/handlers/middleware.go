package handlers

import (
	"errors"
	"net/http"
	"strings"

	"lnkshrt/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "user_id"

// BearerAuth validates the Authorization header on every request. Missing
// header, malformed token, and unknown token all produce the same 401 so a
// caller learns nothing about why validation failed.
func (h *Handler) BearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		const prefix = "Bearer "

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) {
			unauthorized(c)
			return
		}

		userID, err := h.tokenService.Validate(c.Request.Context(), strings.TrimPrefix(header, prefix))
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				unauthorized(c)
				return
			}
			h.logger.Error("Token validation failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
}

// currentUserID returns the authenticated user set by BearerAuth.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	return userID, ok
}
