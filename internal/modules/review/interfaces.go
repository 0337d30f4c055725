package review

import (
	"context"

	"buildconnect/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	ExistsForBooking(ctx context.Context, bookingID string) (bool, error)
	ListByVendor(ctx context.Context, vendorID string) ([]domain.Review, error)
}

type BookingReader interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

// RatingRecomputer folds the vendor's full review set into their profile.
// InvalidateListings runs after the review transaction commits.
type RatingRecomputer interface {
	RecomputeRating(ctx context.Context, vendorUserID string) (float64, int, error)
	InvalidateListings(ctx context.Context)
}

type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
