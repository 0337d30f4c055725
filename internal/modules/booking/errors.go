package booking

import "buildconnect/internal/pkg/apperr"

var (
	ErrBookingNotFound   = apperr.NotFound("BOOKING_NOT_FOUND", "Booking not found")
	ErrForbidden         = apperr.Authorization("FORBIDDEN", "You are not a party to this booking")
	ErrFieldNotAllowed   = apperr.Authorization("FIELD_NOT_ALLOWED", "You may not change this field")
	ErrInvalidTransition = apperr.Conflict("INVALID_TRANSITION", "Booking cannot move to the requested status")
	ErrBookingClosed     = apperr.Conflict("BOOKING_CLOSED", "Booking is already completed or cancelled")
	ErrVendorNotApproved = apperr.Validation("VENDOR_NOT_APPROVED", "vendor_id must reference an approved vendor")
	ErrVendorRequired    = apperr.Validation("VENDOR_REQUIRED", "Assign a vendor before moving past pending")
	ErrNothingToUpdate   = apperr.Validation("NOTHING_TO_UPDATE", "No updatable fields supplied")
)
