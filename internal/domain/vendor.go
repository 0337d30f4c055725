package domain

import "time"

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Availability maps a day key ("monday", "weekdays", ...) to a time range.
// The core never interprets it.
type Availability map[string]string

type VendorProfile struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	Services        []string       `json:"services"`
	ExperienceYears int            `json:"experience_years"`
	Bio             string         `json:"bio"`
	Availability    Availability   `json:"availability"`
	HourlyRate      *float64       `json:"hourly_rate"`
	FixedRate       *float64       `json:"fixed_rate"`
	ApprovalStatus  ApprovalStatus `json:"approval_status"`
	Rating          float64        `json:"rating"`
	TotalReviews    int            `json:"total_reviews"`
	CreatedAt       time.Time      `json:"created_at"`
}

// VendorWithUser is the admin view of a profile.
type VendorWithUser struct {
	VendorProfile
	UserDetails *User `json:"user_details,omitempty"`
}
