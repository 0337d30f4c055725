package vendors

import (
	"context"
	"errors"
	"fmt"
	"time"

	"buildconnect/internal/cache"
	"buildconnect/internal/domain"
	"buildconnect/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const listingPrefix = "vendors:list:"

type Service struct {
	profiles ProfileRepository
	users    UserRepository
	reviews  ReviewReader
	tx       Transactor
	cache    cache.Cache
	cacheTTL time.Duration
	log      *zap.Logger
	now      func() time.Time
}

func NewService(
	profiles ProfileRepository,
	users UserRepository,
	reviews ReviewReader,
	tx Transactor,
	c cache.Cache,
	cacheTTL time.Duration,
	log *zap.Logger,
) *Service {
	return &Service{
		profiles: profiles,
		users:    users,
		reviews:  reviews,
		tx:       tx,
		cache:    c,
		cacheTTL: cacheTTL,
		log:      log,
		now:      time.Now,
	}
}

// CreateProfile registers userID as a vendor. The profile insert and the
// customer to vendor promotion commit together or not at all.
func (s *Service) CreateProfile(ctx context.Context, userID string, req CreateProfileRequest) (*domain.VendorProfile, error) {
	availability := domain.Availability(req.Availability)
	if availability == nil {
		availability = domain.Availability{}
	}
	profile := &domain.VendorProfile{
		ID:              uuid.NewString(),
		UserID:          userID,
		Services:        req.Services,
		ExperienceYears: req.ExperienceYears,
		Bio:             req.Bio,
		Availability:    availability,
		HourlyRate:      req.HourlyRate,
		FixedRate:       req.FixedRate,
		ApprovalStatus:  domain.ApprovalPending,
		CreatedAt:       s.now().UTC(),
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if user.Role == domain.RoleAdmin {
			return ErrAdminCannotBeVendor
		}

		if _, err := s.profiles.GetByUserID(ctx, userID); err == nil {
			return ErrProfileExists
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		if err := s.profiles.Create(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrProfileExists
			}
			return err
		}

		// Users who registered as vendors already hold the role.
		if user.Role == domain.RoleCustomer {
			if err := s.users.UpdateRole(ctx, userID, domain.RoleCustomer, domain.RoleVendor); err != nil {
				return fmt.Errorf("promote user to vendor: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.InvalidateListings(ctx)

	s.log.Info("vendor profile created", zap.String("user_id", userID), zap.String("profile_id", profile.ID))
	return profile, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.VendorProfile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListVendors serves the public directory from cache when it can.
func (s *Service) ListVendors(ctx context.Context, q ListQuery) ([]domain.VendorProfile, error) {
	key := fmt.Sprintf("%s%t:%s", listingPrefix, q.ApprovedOnly, q.Service)

	var cached []domain.VendorProfile
	if err := cache.GetJSON(ctx, s.cache, key, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.log.Warn("vendor listing cache read failed", zap.Error(err))
	}

	f := repository.VendorFilter{Service: q.Service}
	if q.ApprovedOnly {
		f.ApprovalStatus = domain.ApprovalApproved
	}
	list, err := s.profiles.List(ctx, f)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, s.cache, key, list, s.cacheTTL); err != nil {
		s.log.Warn("vendor listing cache write failed", zap.Error(err))
	}
	return list, nil
}

// ListAllWithUsers is the admin view: every profile with its owner attached.
func (s *Service) ListAllWithUsers(ctx context.Context) ([]domain.VendorWithUser, error) {
	list, err := s.profiles.List(ctx, repository.VendorFilter{})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.UserID)
	}
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.VendorWithUser, 0, len(list))
	for _, p := range list {
		out = append(out, domain.VendorWithUser{VendorProfile: p, UserDetails: users[p.UserID]})
	}
	return out, nil
}

// SetApprovalStatus moves the profile to approved or rejected. Setting the
// current status again succeeds without change.
func (s *Service) SetApprovalStatus(ctx context.Context, profileID string, status domain.ApprovalStatus) (*domain.VendorProfile, error) {
	if status != domain.ApprovalApproved && status != domain.ApprovalRejected {
		return nil, ErrInvalidApproval
	}

	if err := s.profiles.SetApprovalStatus(ctx, profileID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	s.InvalidateListings(ctx)

	p, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	s.log.Info("vendor approval changed", zap.String("profile_id", profileID), zap.String("status", string(status)))
	return p, nil
}

// IsApprovedVendor reports whether userID owns an approved profile.
func (s *Service) IsApprovedVendor(ctx context.Context, userID string) (bool, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return p.ApprovalStatus == domain.ApprovalApproved, nil
}

// RecomputeRating sets the vendor's rating to the mean of all their reviews
// and total_reviews to the count, in one write. Concurrent recomputes for
// the same vendor are last-writer-wins. It does not touch the listing cache:
// callers usually run it inside a transaction and must call
// InvalidateListings once that has committed.
func (s *Service) RecomputeRating(ctx context.Context, vendorUserID string) (float64, int, error) {
	reviews, err := s.reviews.ListByVendor(ctx, vendorUserID)
	if err != nil {
		return 0, 0, err
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	total := len(reviews)
	var rating float64
	if total > 0 {
		rating = float64(sum) / float64(total)
	}

	if err := s.profiles.UpdateRating(ctx, vendorUserID, rating, total); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, 0, ErrProfileNotFound
		}
		return 0, 0, err
	}

	s.log.Info("vendor rating recomputed",
		zap.String("vendor_id", vendorUserID),
		zap.Float64("rating", rating),
		zap.Int("total_reviews", total),
	)
	return rating, total, nil
}

// InvalidateListings drops every cached public listing.
func (s *Service) InvalidateListings(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, listingPrefix); err != nil {
		s.log.Warn("vendor listing cache invalidation failed", zap.Error(err))
	}
}
