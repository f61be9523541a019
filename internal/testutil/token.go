package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/auth"
)

// BackendToken signs a backend-style JWT for u valid for ttl.
// The signature uses a throwaway key; the app never verifies it.
func BackendToken(t *testing.T, u TestUser, ttl time.Duration) string {
	t.Helper()
	claims := auth.Claims{
		ID:       u.ID,
		Role:     u.Role,
		Username: u.Name,
		Name:     u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}
