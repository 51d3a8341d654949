package usecase

import (
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/jwt"
)

//go:generate mockgen -source=token_validator.go -destination=../mock/usecase/token_validator_mock.go -package=usecasemock

// TokenValidator turns a bearer token into the acting staff member for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Actor{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, err
	}

	return user.NewActor(claims.UserID, role, claims.BranchID)
}
