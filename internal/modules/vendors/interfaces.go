package vendors

import (
	"context"

	"buildconnect/internal/domain"
	"buildconnect/internal/repository"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *domain.VendorProfile) error
	GetByID(ctx context.Context, id string) (*domain.VendorProfile, error)
	GetByUserID(ctx context.Context, userID string) (*domain.VendorProfile, error)
	List(ctx context.Context, f repository.VendorFilter) ([]domain.VendorProfile, error)
	SetApprovalStatus(ctx context.Context, id string, status domain.ApprovalStatus) error
	UpdateRating(ctx context.Context, userID string, rating float64, total int) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	UpdateRole(ctx context.Context, id string, from, to domain.UserRole) error
}

// ReviewReader feeds the rating recompute.
type ReviewReader interface {
	ListByVendor(ctx context.Context, vendorID string) ([]domain.Review, error)
}

type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
