package admin

import (
	"context"
	"math"

	"buildconnect/internal/domain"
)

// CommissionRate is the platform's share of every settled booking.
const CommissionRate = 0.15

type Service struct {
	users    UserCounter
	bookings BookingReader
	vendors  VendorCounter
	moderate VendorModerator
}

func NewService(users UserCounter, bookings BookingReader, vendors VendorCounter, moderate VendorModerator) *Service {
	return &Service{users: users, bookings: bookings, vendors: vendors, moderate: moderate}
}

// -------------------- Reporting --------------------

// VendorEarnings sums completed and paid bookings assigned to vendorID.
func (s *Service) VendorEarnings(ctx context.Context, vendorID string) (*EarningsResponse, error) {
	settled, err := s.bookings.ListSettled(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	total := sumCharges(settled)
	commission := roundCents(total * CommissionRate)
	return &EarningsResponse{
		TotalBookings:      len(settled),
		TotalEarnings:      total,
		PlatformCommission: commission,
		NetEarnings:        roundCents(total - commission),
		CommissionRate:     CommissionRate,
	}, nil
}

func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	var (
		out StatsResponse
		err error
	)
	if out.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if out.TotalBookings, err = s.bookings.Count(ctx); err != nil {
		return nil, err
	}
	if out.TotalVendors, err = s.vendors.Count(ctx, ""); err != nil {
		return nil, err
	}
	if out.PendingVendors, err = s.vendors.Count(ctx, domain.ApprovalPending); err != nil {
		return nil, err
	}

	settled, err := s.bookings.ListSettled(ctx, "")
	if err != nil {
		return nil, err
	}
	out.TotalRevenue = sumCharges(settled)
	out.PlatformRevenue = roundCents(out.TotalRevenue * CommissionRate)
	return &out, nil
}

// -------------------- Vendors --------------------

func (s *Service) ListVendors(ctx context.Context) ([]domain.VendorWithUser, error) {
	return s.moderate.ListAllWithUsers(ctx)
}

func (s *Service) ApproveVendor(ctx context.Context, profileID string) (*domain.VendorProfile, error) {
	return s.moderate.SetApprovalStatus(ctx, profileID, domain.ApprovalApproved)
}

func (s *Service) RejectVendor(ctx context.Context, profileID string) (*domain.VendorProfile, error) {
	return s.moderate.SetApprovalStatus(ctx, profileID, domain.ApprovalRejected)
}

func sumCharges(bookings []domain.Booking) float64 {
	var total float64
	for i := range bookings {
		total += bookings[i].Charge()
	}
	return roundCents(total)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
