package repository

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"buildconnect/internal/domain"

	"gorm.io/gorm"
)

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

type vendorProfileModel struct {
	ID              string            `gorm:"column:id;primaryKey;size:36"`
	UserID          string            `gorm:"column:user_id;uniqueIndex;not null;size:36"`
	Services        []string          `gorm:"column:services;type:text;serializer:json"`
	ExperienceYears int               `gorm:"column:experience_years"`
	Bio             string            `gorm:"column:bio"`
	Availability    map[string]string `gorm:"column:availability;type:text;serializer:json"`
	HourlyRate      *float64          `gorm:"column:hourly_rate"`
	FixedRate       *float64          `gorm:"column:fixed_rate"`
	ApprovalStatus  string            `gorm:"column:approval_status;index;not null"`
	Rating          float64           `gorm:"column:rating"`
	TotalReviews    int               `gorm:"column:total_reviews"`
	CreatedAt       time.Time         `gorm:"column:created_at"`
}

func (vendorProfileModel) TableName() string { return "vendor_profiles" }

func toDomainVendor(m vendorProfileModel) *domain.VendorProfile {
	services := m.Services
	if services == nil {
		services = []string{}
	}
	availability := domain.Availability(m.Availability)
	if availability == nil {
		availability = domain.Availability{}
	}

	return &domain.VendorProfile{
		ID:              m.ID,
		UserID:          m.UserID,
		Services:        services,
		ExperienceYears: m.ExperienceYears,
		Bio:             m.Bio,
		Availability:    availability,
		HourlyRate:      m.HourlyRate,
		FixedRate:       m.FixedRate,
		ApprovalStatus:  domain.ApprovalStatus(m.ApprovalStatus),
		Rating:          m.Rating,
		TotalReviews:    m.TotalReviews,
		CreatedAt:       m.CreatedAt,
	}
}

func toVendorModel(p *domain.VendorProfile) vendorProfileModel {
	return vendorProfileModel{
		ID:              p.ID,
		UserID:          p.UserID,
		Services:        p.Services,
		ExperienceYears: p.ExperienceYears,
		Bio:             p.Bio,
		Availability:    p.Availability,
		HourlyRate:      p.HourlyRate,
		FixedRate:       p.FixedRate,
		ApprovalStatus:  string(p.ApprovalStatus),
		Rating:          p.Rating,
		TotalReviews:    p.TotalReviews,
		CreatedAt:       p.CreatedAt,
	}
}

// VendorFilter narrows List. Zero values match everything.
type VendorFilter struct {
	Service        string
	ApprovalStatus domain.ApprovalStatus
}

// Create inserts p. A second profile for the same user yields ErrDuplicate.
func (r *VendorRepository) Create(ctx context.Context, p *domain.VendorProfile) error {
	m := toVendorModel(p)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return translate(err)
	}
	*p = *toDomainVendor(m)
	return nil
}

func (r *VendorRepository) GetByID(ctx context.Context, id string) (*domain.VendorProfile, error) {
	var m vendorProfileModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return toDomainVendor(m), nil
}

func (r *VendorRepository) GetByUserID(ctx context.Context, userID string) (*domain.VendorProfile, error) {
	var m vendorProfileModel
	if err := conn(ctx, r.db).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return toDomainVendor(m), nil
}

func (r *VendorRepository) List(ctx context.Context, f VendorFilter) ([]domain.VendorProfile, error) {
	q := conn(ctx, r.db).Model(&vendorProfileModel{})
	if f.ApprovalStatus != "" {
		q = q.Where("approval_status = ?", string(f.ApprovalStatus))
	}
	if f.Service != "" {
		// Coarse match on the JSON text; the exact membership check runs below.
		quoted, _ := json.Marshal(f.Service)
		q = q.Where("services LIKE ?", "%"+string(quoted)+"%")
	}

	var rows []vendorProfileModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.VendorProfile, 0, len(rows))
	for _, m := range rows {
		if f.Service != "" && !slices.Contains(m.Services, f.Service) {
			continue
		}
		out = append(out, *toDomainVendor(m))
	}
	return out, nil
}

// SetApprovalStatus updates the profile with the given id.
func (r *VendorRepository) SetApprovalStatus(ctx context.Context, id string, status domain.ApprovalStatus) error {
	tx := conn(ctx, r.db).Model(&vendorProfileModel{}).
		Where("id = ?", id).
		Update("approval_status", string(status))
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		// sqlite and postgres both report matched rows, so zero means missing.
		return ErrNotFound
	}
	return nil
}

// UpdateRating writes both aggregate fields in a single statement.
func (r *VendorRepository) UpdateRating(ctx context.Context, userID string, rating float64, total int) error {
	tx := conn(ctx, r.db).Model(&vendorProfileModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{"rating": rating, "total_reviews": total})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of profiles, restricted to status when non-empty.
func (r *VendorRepository) Count(ctx context.Context, status domain.ApprovalStatus) (int64, error) {
	q := conn(ctx, r.db).Model(&vendorProfileModel{})
	if status != "" {
		q = q.Where("approval_status = ?", string(status))
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}
