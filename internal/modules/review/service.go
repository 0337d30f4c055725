package review

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
	reviews  ReviewRepository
	bookings BookingReader
	ratings  RatingRecomputer
	tx       Transactor
	log      *zap.Logger
	now      func() time.Time
}

func NewService(reviews ReviewRepository, bookings BookingReader, ratings RatingRecomputer, tx Transactor, log *zap.Logger) *Service {
	return &Service{
		reviews:  reviews,
		bookings: bookings,
		ratings:  ratings,
		tx:       tx,
		log:      log,
		now:      time.Now,
	}
}

// Submit records the customer's review of a completed booking and refreshes
// the vendor's rating in the same transaction.
func (s *Service) Submit(ctx context.Context, customerID string, req CreateReviewRequest) (*domain.Review, error) {
	var rv *domain.Review

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := s.bookings.GetByID(ctx, req.BookingID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		// Someone else's booking looks the same as a missing one.
		if b.CustomerID != customerID {
			return ErrBookingNotFound
		}
		if b.Status != domain.BookingCompleted || b.VendorID == nil {
			return ErrBookingNotCompleted
		}
		vendorID := *b.VendorID
		if v := strings.TrimSpace(req.VendorID); v != "" && v != vendorID {
			return ErrVendorMismatch
		}

		exists, err := s.reviews.ExistsForBooking(ctx, b.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateReview
		}

		rv = &domain.Review{
			ID:         uuid.NewString(),
			BookingID:  b.ID,
			CustomerID: customerID,
			VendorID:   vendorID,
			Rating:     req.Rating,
			Comment:    strings.TrimSpace(req.Comment),
			CreatedAt:  s.now().UTC(),
		}
		if err := s.reviews.Create(ctx, rv); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrDuplicateReview
			}
			return err
		}

		_, _, err = s.ratings.RecomputeRating(ctx, vendorID)
		return err
	})
	if err != nil {
		return nil, err
	}
	// Cleared only after commit so a concurrent listing cannot re-cache the
	// old rating.
	s.ratings.InvalidateListings(ctx)

	s.log.Info("review submitted",
		zap.String("review_id", rv.ID),
		zap.String("booking_id", rv.BookingID),
		zap.String("vendor_id", rv.VendorID),
		zap.Int("rating", rv.Rating),
	)
	return rv, nil
}

// ListForVendor returns the vendor's reviews, newest first.
func (s *Service) ListForVendor(ctx context.Context, vendorID string) ([]domain.Review, error) {
	return s.reviews.ListByVendor(ctx, vendorID)
}
