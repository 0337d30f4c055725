package admin

import (
	"context"

	"buildconnect/internal/domain"
)

type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

type BookingReader interface {
	ListSettled(ctx context.Context, vendorID string) ([]domain.Booking, error)
	Count(ctx context.Context) (int64, error)
}

type VendorCounter interface {
	Count(ctx context.Context, status domain.ApprovalStatus) (int64, error)
}

// VendorModerator is implemented by vendors.Service.
type VendorModerator interface {
	ListAllWithUsers(ctx context.Context) ([]domain.VendorWithUser, error)
	SetApprovalStatus(ctx context.Context, profileID string, status domain.ApprovalStatus) (*domain.VendorProfile, error)
}
