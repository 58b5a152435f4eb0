// Package auth provides the credential primitives for the admin role:
// bcrypt password hashing and signed, time-limited session tokens. The
// service holds no server-side session state; a token alone proves identity.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated admin identity carried by a session token
type Identity struct {
	UserID   int
	Username string
}

// TokenManager issues and verifies signed session tokens
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

// NewTokenManager creates a token manager signing with the given secret.
// Tokens expire after the given duration.
func NewTokenManager(secret string, expiry time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue produces a signed token embedding the user's identity and an expiry
func (tm *TokenManager) Issue(userID int, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(tm.expiry).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Verify validates a token's signature and expiry. It returns the embedded
// identity and true on success, or nil and false for any invalid, expired or
// malformed token. Callers treat false as "unauthenticated", never an error.
func (tm *TokenManager) Verify(tokenString string) (*Identity, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	// JWT claims decode numbers as float64
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, false
	}

	username, ok := claims["username"].(string)
	if !ok {
		return nil, false
	}

	return &Identity{UserID: int(userID), Username: username}, true
}
