package handlers

import (
	"errors"
	"net/http"

	"lnkshrt/internal/services"

	"github.com/gin-gonic/gin"
)

type CreateLinkRequest struct {
	URL       string `json:"url" binding:"required"`
	CustomURL string `json:"custom_url,omitempty"`
}

// CreateLink shortens a URL for the authenticated user. The response
// carries only the short code; the client composes the full URL.
func (h *Handler) CreateLink(c *gin.Context) {
	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	code := services.RandomCode()
	if req.CustomURL != "" {
		code = services.CustomCode(req.CustomURL)
	}

	link, err := h.shortenerService.CreateLink(c.Request.Context(), userID, req.URL, code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidScheme):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL scheme. Only 'http' and 'https' are allowed."})
		case errors.Is(err, services.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Custom URL already exists"})
		default:
			h.logger.Error("Failed to create link", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create link"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"shortened_url": link.ShortURL})
}

func (h *Handler) DeleteLink(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	err := h.shortenerService.Delete(c.Request.Context(), userID, c.Param("short_url"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "URL not found"})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this link"})
		default:
			h.logger.Error("Failed to delete link", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete link"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Link deleted successfully"})
}
