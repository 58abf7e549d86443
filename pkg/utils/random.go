package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// RandomURLSafe returns a URL-safe base64 string built from n bytes of
// cryptographically secure randomness. n=4 yields the 6-character short
// codes, n=32 the bearer-token secrets.
func RandomURLSafe(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
