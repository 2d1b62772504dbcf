package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cafe-management-client/models"
)

type Claims struct {
	UserID uint        `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Inspect decodes the cached token's claims without verifying the
// signature. The client holds no signing secret; the server remains the
// authority on validity and will answer 401 to a forged token anyway.
func Inspect(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Guard reports whether a usable token is cached. This backs the
// dashboard route guard: a missing token or one whose expiry has
// passed means redirect to login before any API call is attempted.
// A cached token that does not decode as a JWT still passes — presence
// is the contract, and the server rejects garbage with a 401.
func Guard(store TokenStore) bool {
	token, ok := store.Token()
	if !ok {
		return false
	}
	claims, err := Inspect(token)
	if err != nil {
		return true
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return false
	}
	return true
}
