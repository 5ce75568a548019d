// Package jwtauth implements the token signing port with HS256 JSON Web
// Tokens. The token subject is the user identifier; no other user data is
// embedded.
package jwtauth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("token is invalid")

// Signer issues and verifies user tokens signed with a shared secret.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner creates a signer. Tokens it issues expire after ttl.
func NewSigner(secret string, ttl time.Duration) Signer {
	return Signer{secret: []byte(secret), ttl: ttl}
}

// Sign issues a token for the user.
func (s Signer) Sign(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify resolves a token back to the user it was issued for. Forged,
// malformed, and expired tokens all come back as ErrInvalidToken.
func (s Signer) Verify(token string) (int64, error) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: subject %q is not a user id", ErrInvalidToken, claims.Subject)
	}

	return userID, nil
}
