package review

type CreateReviewRequest struct {
	BookingID string `json:"booking_id" validate:"required,max=64"`
	VendorID  string `json:"vendor_id" validate:"omitempty,max=64"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment" validate:"max=2000"`
}
