package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims defines the custom claims of a cart-session token.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionTokenService issues and verifies the tokens that identify a cart session.
type SessionTokenService interface {
	// Issue creates a signed token for the session.
	Issue(sessionID string) (string, error)

	// Parse verifies a token and returns its session id.
	Parse(token string) (string, error)
}
