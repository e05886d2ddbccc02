// Package auth provides the cart-session token implementation.
package auth

import (
	"time"

	"efood/config"
	"efood/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const sessionIssuer = "efood-gateway"

// minSecretLength is the shortest HMAC secret accepted for HS256.
const minSecretLength = 16

// jwtService signs cart-session tokens with HS256.
type jwtService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live of a session token.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.SessionTokenService, error) {
	if len(cfg.Session.Secret) < minSecretLength {
		return nil, errors.Errorf("session secret must be at least %d characters", minSecretLength)
	}

	return &jwtService{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token carrying the session id.
func (s *jwtService) Issue(sessionID string) (string, error) {
	now := s.now()
	claims := service.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return token, nil
}

// Parse verifies the token and returns its session id.
func (s *jwtService) Parse(tokenString string) (string, error) {
	var claims service.SessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse session token")
	}
	if claims.SessionID == "" {
		return "", errors.New("session token without session id")
	}

	return claims.SessionID, nil
}
