package repository

import (
	"context"
	"time"

	"buildconnect/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              string    `gorm:"column:id;primaryKey;size:36"`
	CustomerID      string    `gorm:"column:customer_id;index;not null;size:36"`
	VendorID        *string   `gorm:"column:vendor_id;index;size:36"`
	ServiceName     string    `gorm:"column:service_name;not null"`
	ServiceCategory string    `gorm:"column:service_category"`
	BookingDate     string    `gorm:"column:booking_date"`
	TimeSlot        string    `gorm:"column:time_slot"`
	Location        string    `gorm:"column:location"`
	Pincode         string    `gorm:"column:pincode"`
	Description     string    `gorm:"column:description"`
	Status          string    `gorm:"column:status;index;not null"`
	PricingType     string    `gorm:"column:pricing_type;not null"`
	EstimatedPrice  float64   `gorm:"column:estimated_price"`
	FinalPrice      *float64  `gorm:"column:final_price"`
	PaymentStatus   string    `gorm:"column:payment_status;not null"`
	PaymentMethod   *string   `gorm:"column:payment_method"`
	CreatedAt       time.Time `gorm:"column:created_at;index"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		VendorID:        m.VendorID,
		ServiceName:     m.ServiceName,
		ServiceCategory: m.ServiceCategory,
		BookingDate:     m.BookingDate,
		TimeSlot:        m.TimeSlot,
		Location:        m.Location,
		Pincode:         m.Pincode,
		Description:     m.Description,
		Status:          domain.BookingStatus(m.Status),
		PricingType:     domain.PricingType(m.PricingType),
		EstimatedPrice:  m.EstimatedPrice,
		FinalPrice:      m.FinalPrice,
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		PaymentMethod:   m.PaymentMethod,
		CreatedAt:       m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		VendorID:        b.VendorID,
		ServiceName:     b.ServiceName,
		ServiceCategory: b.ServiceCategory,
		BookingDate:     b.BookingDate,
		TimeSlot:        b.TimeSlot,
		Location:        b.Location,
		Pincode:         b.Pincode,
		Description:     b.Description,
		Status:          string(b.Status),
		PricingType:     string(b.PricingType),
		EstimatedPrice:  b.EstimatedPrice,
		FinalPrice:      b.FinalPrice,
		PaymentStatus:   string(b.PaymentStatus),
		PaymentMethod:   b.PaymentMethod,
		CreatedAt:       b.CreatedAt,
	}
}

// BookingFilter narrows List. Zero values match everything.
type BookingFilter struct {
	CustomerID string
	VendorID   string
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return translate(err)
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return toDomainBooking(m), nil
}

// List returns matching bookings, newest first.
func (r *BookingRepository) List(ctx context.Context, f BookingFilter) ([]domain.Booking, error) {
	q := conn(ctx, r.db).Model(&bookingModel{})
	if f.CustomerID != "" {
		q = q.Where("customer_id = ?", f.CustomerID)
	}
	if f.VendorID != "" {
		q = q.Where("vendor_id = ?", f.VendorID)
	}

	var rows []bookingModel
	if err := q.Order("created_at DESC").Order("id").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return toDomainBookings(rows), nil
}

// ListSettled returns completed and paid bookings, for one vendor when
// vendorID is non-empty.
func (r *BookingRepository) ListSettled(ctx context.Context, vendorID string) ([]domain.Booking, error) {
	q := conn(ctx, r.db).Model(&bookingModel{}).
		Where("status = ? AND payment_status = ?", string(domain.BookingCompleted), string(domain.PaymentPaid))
	if vendorID != "" {
		q = q.Where("vendor_id = ?", vendorID)
	}

	var rows []bookingModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return toDomainBookings(rows), nil
}

// Update persists the mutable fields of b. customer_id and estimated_price
// are never written after creation.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	tx := conn(ctx, r.db).Model(&bookingModel{}).
		Where("id = ?", b.ID).
		Select("status", "vendor_id", "final_price", "payment_status", "payment_method").
		Updates(map[string]any{
			"status":         string(b.Status),
			"vendor_id":      b.VendorID,
			"final_price":    b.FinalPrice,
			"payment_status": string(b.PaymentStatus),
			"payment_method": b.PaymentMethod,
		})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := conn(ctx, r.db).Model(&bookingModel{}).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func toDomainBookings(rows []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
