package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingAssigned   BookingStatus = "assigned"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingAssigned, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal statuses accept no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentUnpaid || s == PaymentPaid
}

type PricingType string

const (
	PricingFixed      PricingType = "fixed"
	PricingHourly     PricingType = "hourly"
	PricingInspection PricingType = "inspection"
)

type Booking struct {
	ID              string        `json:"id"`
	CustomerID      string        `json:"customer_id"`
	VendorID        *string       `json:"vendor_id"`
	ServiceName     string        `json:"service_name"`
	ServiceCategory string        `json:"service_category"`
	BookingDate     string        `json:"booking_date"`
	TimeSlot        string        `json:"time_slot"`
	Location        string        `json:"location"`
	Pincode         string        `json:"pincode"`
	Description     string        `json:"description"`
	Status          BookingStatus `json:"status"`
	PricingType     PricingType   `json:"pricing_type"`
	EstimatedPrice  float64       `json:"estimated_price"`
	FinalPrice      *float64      `json:"final_price"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentMethod   *string       `json:"payment_method"`
	CreatedAt       time.Time     `json:"created_at"`
}

// Charge is the amount billed for the booking: final price once set,
// the estimate otherwise.
func (b *Booking) Charge() float64 {
	if b.FinalPrice != nil {
		return *b.FinalPrice
	}
	return b.EstimatedPrice
}

// IsAssignedTo reports whether userID is the booking's vendor.
func (b *Booking) IsAssignedTo(userID string) bool {
	return b.VendorID != nil && *b.VendorID == userID
}
