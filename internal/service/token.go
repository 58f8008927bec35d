package service

import (
	"github.com/verso/inkwell/api/internal/model"
	"github.com/verso/inkwell/api/pkg/jwt"
)

// TokenService issues and validates stateless access tokens. There is
// deliberately no refresh or revocation flow: a token stays valid
// until it expires, and logout is purely a client-side operation.
type TokenService struct {
	jwtService *jwt.Service
}

// NewTokenService creates a new token service
func NewTokenService(jwtService *jwt.Service) *TokenService {
	return &TokenService{jwtService: jwtService}
}

// Issue signs an access token for the given user.
func (s *TokenService) Issue(user *model.User) (string, error) {
	return s.jwtService.Sign(user.ID)
}

// ValidateAccessToken verifies a token and returns its claims.
func (s *TokenService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return s.jwtService.Validate(token)
}
