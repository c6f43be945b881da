package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrEmptyToken is returned for blank tokens
var ErrEmptyToken = errors.New("token is empty")

// Claims are the fields the backend puts in its access tokens.
// user_id is kept as interface{} because backends issue it as a number or a string.
type Claims struct {
	UserID interface{} `json:"user_id,omitempty"`
	Role   string      `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserIDString returns the user id in printable form
func (c *Claims) UserIDString() string {
	switch v := c.UserID.(type) {
	case nil:
		return c.Subject
	case float64:
		return fmt.Sprintf("%.0f", v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ExpiresIn returns the time left before exp, zero when the claim is absent
func (c *Claims) ExpiresIn(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Time.Sub(now)
}

// ParseClaims decodes a token's claims without verifying its signature.
// The client never holds the signing secret; the backend stays the authority.
func ParseClaims(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return claims, nil
}
