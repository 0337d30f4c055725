package auth

import "buildconnect/internal/domain"

type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6,max=72"`
	FullName string          `json:"full_name" validate:"required,min=2,max=120"`
	Phone    string          `json:"phone" validate:"omitempty,max=32"`
	Role     domain.UserRole `json:"role" validate:"omitempty,oneof=customer vendor admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}
