package vendors

type CreateProfileRequest struct {
	Services        []string          `json:"services" validate:"required,min=1,dive,required,max=100"`
	ExperienceYears int               `json:"experience_years" validate:"gte=0,lte=80"`
	Bio             string            `json:"bio" validate:"max=2000"`
	Availability    map[string]string `json:"availability"`
	HourlyRate      *float64          `json:"hourly_rate" validate:"omitempty,gte=0"`
	FixedRate       *float64          `json:"fixed_rate" validate:"omitempty,gte=0"`
}

// ListQuery is bound from the query string of GET /vendors.
type ListQuery struct {
	Service      string
	ApprovedOnly bool
}
