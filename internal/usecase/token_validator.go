package usecase

import (
	"weatherstay/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware. The returned
// string is the identity provider's subject, which the rest of the system
// treats as the opaque user id.
type TokenValidator interface {
	ValidateToken(tokenString string) (string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, error) {
	return t.jwtService.ValidateToken(tokenString)
}
