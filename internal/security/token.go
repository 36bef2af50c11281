package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a resume token fails validation
var ErrInvalidToken = errors.New("invalid resume token")

// ResumeClaims binds a resume token to a session and player seat
type ResumeClaims struct {
	SessionID string `json:"sid"`
	Player    int    `json:"player"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates signed resume tokens that let a
// player rejoin their seat from another device
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager with the given signing secret
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed resume token for a player seat
func (tm *TokenManager) Issue(sessionID string, player int) (string, error) {
	now := time.Now()
	claims := ResumeClaims{
		SessionID: sessionID,
		Player:    player,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign resume token: %w", err)
	}
	return signed, nil
}

// Validate parses a resume token and returns its claims
func (tm *TokenManager) Validate(tokenString string) (*ResumeClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ResumeClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*ResumeClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Player != 1 && claims.Player != 2 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
