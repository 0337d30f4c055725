package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"buildconnect/internal/domain"
	"buildconnect/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	bookings BookingRepository
	vendors  VendorChecker
	log      *zap.Logger
	now      func() time.Time
}

func NewService(bookings BookingRepository, vendors VendorChecker, log *zap.Logger) *Service {
	return &Service{
		bookings: bookings,
		vendors:  vendors,
		log:      log,
		now:      time.Now,
	}
}

// Create stores a new pending, unpaid booking for customerID. The estimated
// price is taken as supplied.
func (s *Service) Create(ctx context.Context, customerID string, req CreateBookingRequest) (*domain.Booking, error) {
	pricing := req.PricingType
	if pricing == "" {
		pricing = domain.PricingFixed
	}

	b := &domain.Booking{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		ServiceName:     strings.TrimSpace(req.ServiceName),
		ServiceCategory: strings.TrimSpace(req.ServiceCategory),
		BookingDate:     strings.TrimSpace(req.BookingDate),
		TimeSlot:        strings.TrimSpace(req.TimeSlot),
		Location:        strings.TrimSpace(req.Location),
		Pincode:         strings.TrimSpace(req.Pincode),
		Description:     req.Description,
		Status:          domain.BookingPending,
		PricingType:     pricing,
		EstimatedPrice:  *req.EstimatedPrice,
		PaymentStatus:   domain.PaymentUnpaid,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	s.log.Info("booking created", zap.String("booking_id", b.ID), zap.String("customer_id", customerID))
	return b, nil
}

// Get returns the booking if the requester is an admin, its customer or its
// assigned vendor.
func (s *Service) Get(ctx context.Context, id, requesterID string, role domain.UserRole) (*domain.Booking, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, ok := partyOf(b, requesterID, role); !ok {
		return nil, ErrForbidden
	}
	return b, nil
}

// List scopes bookings by role, newest first.
func (s *Service) List(ctx context.Context, requesterID string, role domain.UserRole) ([]domain.Booking, error) {
	var f repository.BookingFilter
	switch role {
	case domain.RoleAdmin:
	case domain.RoleVendor:
		f.VendorID = requesterID
	default:
		f.CustomerID = requesterID
	}
	return s.bookings.List(ctx, f)
}

// ListForVendor returns the bookings assigned to vendorUserID.
func (s *Service) ListForVendor(ctx context.Context, vendorUserID string) ([]domain.Booking, error) {
	return s.bookings.List(ctx, repository.BookingFilter{VendorID: vendorUserID})
}

// Update applies the supplied fields after checking each against the
// caller's part in the booking. Status changes go through canTransition.
func (s *Service) Update(ctx context.Context, id string, req UpdateBookingRequest, requesterID string, role domain.UserRole) (*domain.Booking, error) {
	if req.empty() {
		return nil, ErrNothingToUpdate
	}

	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	p, ok := partyOf(b, requesterID, role)
	if !ok {
		return nil, ErrForbidden
	}

	next := *b

	if req.VendorID != nil {
		if err := s.assignVendor(ctx, &next, strings.TrimSpace(*req.VendorID), p, req.Status == nil); err != nil {
			return nil, err
		}
	}

	if req.Status != nil && *req.Status != b.Status {
		to := *req.Status
		if !canTransition(b.Status, to, p) {
			return nil, ErrInvalidTransition.WithDetails(map[string]string{
				"from": string(b.Status),
				"to":   string(to),
				"role": p.String(),
			})
		}
		if needsVendor(to) && next.VendorID == nil {
			return nil, ErrVendorRequired
		}
		next.Status = to
	}

	if req.FinalPrice != nil {
		if p == partyCustomer {
			return nil, fieldNotAllowed("final_price")
		}
		price := *req.FinalPrice
		next.FinalPrice = &price
	}

	if req.PaymentStatus != nil && *req.PaymentStatus != b.PaymentStatus {
		switch {
		case p == partyCustomer:
			return nil, fieldNotAllowed("payment_status")
		case *req.PaymentStatus == domain.PaymentUnpaid && p != partyAdmin:
			return nil, fieldNotAllowed("payment_status")
		}
		next.PaymentStatus = *req.PaymentStatus
	}

	if req.PaymentMethod != nil {
		if p == partyVendor {
			return nil, fieldNotAllowed("payment_method")
		}
		method := strings.TrimSpace(*req.PaymentMethod)
		next.PaymentMethod = &method
	}

	if err := s.bookings.Update(ctx, &next); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if next.Status != b.Status {
		s.log.Info("booking status changed",
			zap.String("booking_id", b.ID),
			zap.String("from", string(b.Status)),
			zap.String("to", string(next.Status)),
			zap.String("by", p.String()),
		)
	}
	return &next, nil
}

// assignVendor sets the vendor on next. Assigning to a pending booking
// without an explicit status also moves it to assigned.
func (s *Service) assignVendor(ctx context.Context, next *domain.Booking, vendorID string, p party, implicitStatus bool) error {
	if p != partyAdmin {
		return fieldNotAllowed("vendor_id")
	}
	if next.Status.Terminal() {
		return ErrBookingClosed
	}
	if next.IsAssignedTo(vendorID) {
		return nil
	}

	approved, err := s.vendors.IsApprovedVendor(ctx, vendorID)
	if err != nil {
		return err
	}
	if !approved {
		return ErrVendorNotApproved
	}

	next.VendorID = &vendorID
	if implicitStatus && next.Status == domain.BookingPending {
		next.Status = domain.BookingAssigned
	}
	return nil
}

func (s *Service) load(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// partyOf resolves the caller's part in b. The assigned vendor wins over the
// customer when one user is both.
func partyOf(b *domain.Booking, requesterID string, role domain.UserRole) (party, bool) {
	switch {
	case role == domain.RoleAdmin:
		return partyAdmin, true
	case b.IsAssignedTo(requesterID):
		return partyVendor, true
	case b.CustomerID == requesterID:
		return partyCustomer, true
	}
	return 0, false
}

func fieldNotAllowed(field string) error {
	return ErrFieldNotAllowed.WithDetails(map[string]string{field: "not allowed for your role"})
}
