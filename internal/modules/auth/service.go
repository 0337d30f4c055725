package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"buildconnect/internal/domain"
	"buildconnect/internal/pkg/jwt"
	"buildconnect/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service contains all business logic for authentication
type Service struct {
	users    UserRepository
	tokens   tokenService
	log      *zap.Logger
	hashCost int
	now      func() time.Time
}

func NewService(users UserRepository, tokens tokenService, log *zap.Logger) *Service {
	return &Service{
		users:    users,
		tokens:   tokens,
		log:      log,
		hashCost: bcrypt.DefaultCost,
		now:      time.Now,
	}
}

// Register creates an account and signs the caller in. Admin accounts are
// never self-registered.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if role == domain.RoleAdmin || !role.Valid() {
		return nil, ErrRoleNotAllowed
	}

	email := normalizeEmail(req.Email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         role,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	s.log.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return s.issue(user)
}

// Login fails the same way for an unknown email and a wrong password.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *Service) VerifyToken(token string) (*jwt.Claims, error) {
	claims, err := s.tokens.ValidateToken(token)
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	default:
		return nil, ErrTokenInvalid
	}
}

// Authenticate verifies token and loads the current user record. A token for
// a user that no longer exists is treated as invalid.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.VerifyToken(token)
	if err != nil {
		return nil, err
	}
	return s.loadCurrent(ctx, claims.UserID)
}

// Authorize checks that the user behind userID currently holds exactly the
// required role.
func (s *Service) Authorize(ctx context.Context, userID string, required domain.UserRole) (*domain.User, error) {
	user, err := s.loadCurrent(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != required {
		return nil, ErrForbidden
	}
	return user, nil
}

func (s *Service) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// EnsureAdmin creates the bootstrap admin account unless email is taken.
// It reports whether an account was created.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	email = normalizeEmail(email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return false, err
	}
	admin := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FullName:     "Admin User",
		Phone:        "9999999999",
		Role:         domain.RoleAdmin,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	s.log.Info("admin account created", zap.String("email", email))
	return true, nil
}

// HashPassword uses the service's bcrypt cost.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	return string(hash), err
}

func (s *Service) loadCurrent(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) issue(user *domain.User) (*AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{AccessToken: token, TokenType: "bearer", User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
