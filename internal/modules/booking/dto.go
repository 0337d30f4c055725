package booking

import "buildconnect/internal/domain"

type CreateBookingRequest struct {
	ServiceName     string             `json:"service_name" validate:"required,max=200"`
	ServiceCategory string             `json:"service_category" validate:"max=100"`
	BookingDate     string             `json:"booking_date" validate:"required,max=40"`
	TimeSlot        string             `json:"time_slot" validate:"max=40"`
	Location        string             `json:"location" validate:"max=500"`
	Pincode         string             `json:"pincode" validate:"max=20"`
	Description     string             `json:"description" validate:"max=2000"`
	PricingType     domain.PricingType `json:"pricing_type" validate:"omitempty,oneof=fixed hourly inspection"`
	EstimatedPrice  *float64           `json:"estimated_price" validate:"required,gte=0"`
}

// UpdateBookingRequest carries the fields a PATCH may change. Nil means
// leave as is.
type UpdateBookingRequest struct {
	Status        *domain.BookingStatus `json:"status" validate:"omitempty,oneof=pending assigned confirmed in_progress completed cancelled"`
	VendorID      *string               `json:"vendor_id" validate:"omitempty,min=1,max=64"`
	FinalPrice    *float64              `json:"final_price" validate:"omitempty,gte=0"`
	PaymentStatus *domain.PaymentStatus `json:"payment_status" validate:"omitempty,oneof=unpaid paid"`
	PaymentMethod *string               `json:"payment_method" validate:"omitempty,min=1,max=50"`
}

func (r UpdateBookingRequest) empty() bool {
	return r.Status == nil && r.VendorID == nil && r.FinalPrice == nil &&
		r.PaymentStatus == nil && r.PaymentMethod == nil
}
