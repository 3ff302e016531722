package session

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenClaims are the fields we read from the upstream access token.
// The token is issued and verified by the upstream API, so it is parsed without verification.
type TokenClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// InspectToken decodes the claims of an access token without checking its signature
func InspectToken(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ttlFor bounds the configured lifetime by the token's own expiry.
// ok is false when the token has already expired.
func ttlFor(token string, configured time.Duration, now time.Time) (ttl time.Duration, ok bool) {
	claims, err := InspectToken(token)
	if err != nil || claims.ExpiresAt == nil {
		return configured, true
	}

	remaining := claims.ExpiresAt.Time.Sub(now)
	if remaining <= 0 {
		return 0, false
	}
	if configured > 0 && configured < remaining {
		return configured, true
	}
	return remaining, true
}
