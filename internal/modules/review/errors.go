package review

import "buildconnect/internal/pkg/apperr"

var (
	ErrBookingNotFound     = apperr.NotFound("BOOKING_NOT_FOUND", "Booking not found")
	ErrBookingNotCompleted = apperr.Validation("BOOKING_NOT_COMPLETED", "Only completed bookings can be reviewed")
	ErrDuplicateReview     = apperr.Conflict("REVIEW_EXISTS", "This booking has already been reviewed")
	ErrVendorMismatch      = apperr.Validation("VENDOR_MISMATCH", "vendor_id does not match the booking's vendor")
)
