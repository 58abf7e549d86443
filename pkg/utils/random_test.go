package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomURLSafe(t *testing.T) {
	code, err := RandomURLSafe(4)
	assert.NoError(t, err)
	assert.Len(t, code, 6)
	assert.NotContains(t, code, "+")
	assert.NotContains(t, code, "/")
	assert.NotContains(t, code, "=")
}

func TestRandomURLSafeUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		secret, err := RandomURLSafe(32)
		assert.NoError(t, err)
		assert.Len(t, secret, 43)
		assert.False(t, seen[secret], "duplicate secret generated")
		seen[secret] = true
	}
}
