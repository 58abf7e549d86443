package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerAuth(t *testing.T) {
	h, _ := setupTestHandler()
	r := setupTestRouter(h)
	token := signupAndLogin(t, r, "authuser", "password123")

	body := map[string]string{"url": "https://example.com"}

	t.Run("Valid token passes", func(t *testing.T) {
		w := doJSON(r, "POST", "/links", body, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing header", func(t *testing.T) {
		w := doJSON(r, "POST", "/links", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	})

	t.Run("Malformed token", func(t *testing.T) {
		w := doJSON(r, "POST", "/links", body, "not-a-real-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	})

	t.Run("Tampered token body", func(t *testing.T) {
		tampered := token[:len(token)-4] + "AAAA"
		w := doJSON(r, "POST", "/links", body, tampered)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Failure responses are identical", func(t *testing.T) {
		missing := doJSON(r, "POST", "/links", body, "")
		unknown := doJSON(r, "POST", "/links", body, "completely-unknown")
		assert.Equal(t, missing.Body.String(), unknown.Body.String())
	})
}
