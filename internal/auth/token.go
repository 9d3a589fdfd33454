// Package auth provides bearer token issuance, password hashing and
// request identity helpers.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/notekeeper/notekeeper/internal/model"
)

// DefaultTokenTTL is the lifetime of an issued token.
const DefaultTokenTTL = 7 * 24 * time.Hour

// MinSecretLength is the minimum accepted signing secret length in bytes.
const MinSecretLength = 32

var (
	// ErrInvalidToken is returned for any token that fails verification.
	// Malformed, forged and expired tokens are deliberately not distinguished.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrWeakSecret indicates the signing secret is missing or too short.
	ErrWeakSecret = errors.New("token signing secret is missing or too short")
)

// Claims is the JWT payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// TokenService issues and verifies HS256 bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption configures a TokenService.
type TokenOption func(*TokenService)

// WithClock overrides the time source. Used by tests to simulate expiry.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

// WithTTL overrides the token lifetime.
func WithTTL(ttl time.Duration) TokenOption {
	return func(s *TokenService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewTokenService creates a TokenService. The secret is required; there is no
// fallback default.
func NewTokenService(secret string, opts ...TokenOption) (*TokenService, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}

	s := &TokenService{
		secret: []byte(secret),
		ttl:    DefaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for the given identity, valid for the configured TTL.
func (s *TokenService) Issue(identity model.Identity) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: identity.UserID,
		Email:  identity.Email,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses the token and returns the identity it carries.
// Every failure is reported as ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (model.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return model.Identity{}, ErrInvalidToken
	}

	if claims.UserID == "" {
		return model.Identity{}, ErrInvalidToken
	}

	return model.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
