package booking

import (
	"context"

	"buildconnect/internal/domain"
	"buildconnect/internal/repository"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
}

// VendorChecker answers whether a user may be assigned to bookings.
type VendorChecker interface {
	IsApprovedVendor(ctx context.Context, userID string) (bool, error)
}
