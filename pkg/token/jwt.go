// Package token issues and verifies the signed bearer tokens handed out at login.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrEmptySecret is returned when a service is constructed without a signing secret.
	ErrEmptySecret = errors.New("token signing secret must not be empty")
	// ErrInvalidToken is returned when a token fails signature or structure verification.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the token payload. It carries solely the user identifier;
// no expiration claim is set, so a token stays valid for as long as the
// signing secret does.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies bearer tokens with a server-held symmetric secret.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a token service from the configured signing secret.
func NewJWTService(secret string) (*JWTService, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &JWTService{secret: []byte(secret)}, nil
}

// Sign issues a token bound to the given user identifier, signed with HS256.
func (s *JWTService) Sign(userID string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: userID})
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token signature and returns the embedded user identifier.
// Only signature and structure are verified; the payload carries no expiry.
func (s *JWTService) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !t.Valid {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
