package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrMissingSecret    = errors.New("signing secret is required")
)

// DefaultExpiration is used when Config.Expiration is zero.
const DefaultExpiration = 30 * 24 * time.Hour

// Claims represents the claims carried by an access token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Service signs and validates HMAC-SHA256 access tokens. Tokens are
// stateless: everything needed to authenticate a request is encoded in
// the token itself, so there is no server-side session store.
type Service struct {
	secret     []byte
	issuer     string
	expiration time.Duration
	now        func() time.Time
}

// Config holds JWT service configuration
type Config struct {
	Secret     string
	Issuer     string
	Expiration time.Duration
}

// NewService creates a new JWT service.
func NewService(cfg Config) (*Service, error) {
	return NewServiceWithClock(cfg, time.Now)
}

// NewServiceWithClock creates a JWT service with an injectable clock.
// Both signing and validation use the supplied clock, which lets tests
// mint tokens in the past and observe expiry deterministically.
func NewServiceWithClock(cfg Config, now func() time.Time) (*Service, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	expiration := cfg.Expiration
	if expiration == 0 {
		expiration = DefaultExpiration
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		expiration: expiration,
		now:        now,
	}, nil
}

// Sign issues a signed token for the given user ID.
func (s *Service) Sign(userID string) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token, returning its claims.
// Any tampering with header, payload or signature fails verification.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidSignature
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrInvalidSignature
	default:
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		// Older tokens carried only the subject claim.
		if claims.Subject == "" {
			return nil, ErrInvalidToken
		}
		claims.UserID = claims.Subject
	}
	return claims, nil
}

// Expiration returns the lifetime applied to newly signed tokens.
func (s *Service) Expiration() time.Duration {
	return s.expiration
}
