package utils

import (
	"context"
	"time"
)

func revokedKey(tokenID string) string {
	return "jwt:revoked:" + tokenID
}

// RevokeToken marks a session token id as logged out until its natural expiry.
func RevokeToken(ctx context.Context, s Store, tokenID string, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if ttl <= 0 || tokenID == "" {
		return
	}
	s.Set(ctx, revokedKey(tokenID), []byte("1"), ttl)
}

// IsTokenRevoked checks if a token was revoked before natural expiration.
func IsTokenRevoked(ctx context.Context, s Store, tokenID string) bool {
	_, ok := s.Get(ctx, revokedKey(tokenID))
	return ok
}
