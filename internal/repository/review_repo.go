package repository

import (
	"context"
	"time"

	"buildconnect/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID         string    `gorm:"column:id;primaryKey;size:36"`
	BookingID  string    `gorm:"column:booking_id;uniqueIndex;not null;size:36"`
	CustomerID string    `gorm:"column:customer_id;not null;size:36"`
	VendorID   string    `gorm:"column:vendor_id;index;not null;size:36"`
	Rating     int       `gorm:"column:rating;not null"`
	Comment    string    `gorm:"column:comment"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:         m.ID,
		BookingID:  m.BookingID,
		CustomerID: m.CustomerID,
		VendorID:   m.VendorID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt,
	}
}

func toReviewModel(rv *domain.Review) reviewModel {
	return reviewModel{
		ID:         rv.ID,
		BookingID:  rv.BookingID,
		CustomerID: rv.CustomerID,
		VendorID:   rv.VendorID,
		Rating:     rv.Rating,
		Comment:    rv.Comment,
		CreatedAt:  rv.CreatedAt,
	}
}

// Create inserts rv. A second review for the same booking yields ErrDuplicate.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return translate(err)
	}
	*rv = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID string) (bool, error) {
	var n int64
	err := conn(ctx, r.db).Model(&reviewModel{}).Where("booking_id = ?", bookingID).Count(&n).Error
	if err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

// ListByVendor returns the vendor's reviews, newest first.
func (r *ReviewRepository) ListByVendor(ctx context.Context, vendorID string) ([]domain.Review, error) {
	var rows []reviewModel
	err := conn(ctx, r.db).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}
