package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned for a backend token past its exp claim.
var ErrTokenExpired = errors.New("backend token expired")

// Claims are the fields the backend puts in its JWT.
type Claims struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Username string `json:"username"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

// UserID returns the id claim, falling back to sub.
func (c Claims) UserID() string {
	if c.ID != "" {
		return c.ID
	}
	return c.Subject
}

// Expiry returns the exp claim, or the zero time when absent.
func (c Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// ParseClaims decodes a backend token without checking its signature. The
// backend holds the signing key and verifies the token on every call; the
// decoded claims only drive what the UI offers.
func ParseClaims(token string) (Claims, error) {
	var c Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return Claims{}, fmt.Errorf("decode backend token: %w", err)
	}
	if c.UserID() == "" {
		return Claims{}, errors.New("decode backend token: no user id")
	}
	return c, nil
}

// CheckExpiry returns ErrTokenExpired when c has an exp claim before now.
func (c Claims) CheckExpiry(now time.Time) error {
	exp := c.Expiry()
	if !exp.IsZero() && !now.Before(exp) {
		return ErrTokenExpired
	}
	return nil
}
