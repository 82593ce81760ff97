package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	PasswordCost = bcrypt.MinCost

	hash, err := HashPassword("violet-lantern-42")
	require.NoError(t, err)
	assert.NotEqual(t, "violet-lantern-42", hash)
	assert.True(t, CheckPassword(hash, "violet-lantern-42"))
	assert.False(t, CheckPassword(hash, "violet-lantern-43"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "<p>hi</p>", Sanitize("  <p>hi</p><script>alert(1)</script> "))
	link := Sanitize(`<a href="https://example.com" onclick="x()">x</a>`)
	assert.Contains(t, link, `rel="nofollow"`)
	assert.NotContains(t, link, "onclick")
}
