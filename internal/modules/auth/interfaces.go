package auth

import (
	"context"

	"buildconnect/internal/domain"
	"buildconnect/internal/pkg/jwt"
)

// UserRepository lists only the methods the auth service uses.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type tokenService interface {
	GenerateToken(userID, email, role string) (string, error)
	ValidateToken(token string) (*jwt.Claims, error)
}
