package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/saferoute/internal/pkg/models"
)

// Claims is what the backend puts in its access tokens
type Claims struct {
	UserID int64       `json:"user_id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Inspect decodes token claims without verifying the signature. The client
// never holds the signing key; it only needs the expiry and role.
func Inspect(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return claims, nil
}

// ExpiresWithin reports whether the token is expired or will be within d.
// Tokens without an expiry never expire.
func (c *Claims) ExpiresWithin(now time.Time, d time.Duration) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !now.Add(d).Before(c.ExpiresAt.Time)
}
