package usecase

import (
	"estate-booking/internal/pkg/jwt"
)

// TokenValidator resolves a bearer token into the caller identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (jwt.Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (jwt.Identity, error) {
	return t.jwtService.Identify(tokenString)
}
