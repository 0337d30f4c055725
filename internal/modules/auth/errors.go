package auth

import "buildconnect/internal/pkg/apperr"

var (
	ErrInvalidCredentials = apperr.Authentication("INVALID_CREDENTIALS", "Invalid email or password")
	ErrEmailAlreadyExists = apperr.Conflict("EMAIL_EXISTS", "This email is already registered")
	ErrTokenExpired       = apperr.Authentication("TOKEN_EXPIRED", "Token has expired")
	ErrTokenInvalid       = apperr.Authentication("INVALID_TOKEN", "Invalid token")
	ErrRoleNotAllowed     = apperr.Validation("ROLE_NOT_ALLOWED", "This role cannot be chosen at registration")
	ErrForbidden          = apperr.Authorization("FORBIDDEN", "Access denied: insufficient permissions")
	ErrUserNotFound       = apperr.NotFound("USER_NOT_FOUND", "User not found")
)
