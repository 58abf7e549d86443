package handlers

import (
	"errors"
	"net/http"

	"lnkshrt/internal/services"

	"github.com/gin-gonic/gin"
)

// Redirect resolves a short code and redirects to the original URL. No
// auth and no side effects: lookups always hit the database so a deleted
// link 404s immediately.
func (h *Handler) Redirect(c *gin.Context) {
	link, err := h.shortenerService.Resolve(c.Request.Context(), c.Param("short_url"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "URL not found"})
			return
		}
		h.logger.Error("Failed to resolve link", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, link.OriginalURL)
}

// QRCode renders the short link as a PNG QR code.
func (h *Handler) QRCode(c *gin.Context) {
	link, err := h.shortenerService.Resolve(c.Request.Context(), c.Param("short_url"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "URL not found"})
			return
		}
		h.logger.Error("Failed to resolve link", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	content := scheme + "://" + c.Request.Host + "/" + link.ShortURL

	png, err := h.qrService.GeneratePNG(content, 256)
	if err != nil {
		h.logger.Error("Failed to generate QR code", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
