package vendors

import "buildconnect/internal/pkg/apperr"

var (
	ErrProfileExists       = apperr.Conflict("PROFILE_EXISTS", "Vendor profile already exists")
	ErrProfileNotFound     = apperr.NotFound("PROFILE_NOT_FOUND", "Vendor profile not found")
	ErrAdminCannotBeVendor = apperr.Authorization("ADMIN_CANNOT_BE_VENDOR", "Admins cannot create vendor profiles")
	ErrInvalidApproval     = apperr.Validation("INVALID_APPROVAL_STATUS", "Approval status must be approved or rejected")
	ErrUserNotFound        = apperr.NotFound("USER_NOT_FOUND", "User not found")
)
