package dto

// SetupProfileRequest carries the role choice and the fields of every role.
// Only the fields of the chosen role are read.
type SetupProfileRequest struct {
	Role      string `json:"role" validate:"required"`
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`

	// couple / individual
	CoupleName  string   `json:"coupleName" validate:"max=255"`
	FullName    string   `json:"fullName" validate:"max=255"`
	Email       string   `json:"email" validate:"omitempty,email"`
	PartnerName string   `json:"partnerName" validate:"max=255"`
	WeddingDate *Date    `json:"weddingDate"`
	EventType   string   `json:"eventType" validate:"max=100"`
	EventDate   *Date    `json:"eventDate"`
	Budget      *float64 `json:"budget" validate:"omitempty,gte=0"`
	Venue       string   `json:"venue" validate:"max=255"`
	GuestCount  *int     `json:"guestCount" validate:"omitempty,gte=0"`
	Style       string   `json:"style" validate:"max=100"`
	Location    string   `json:"location" validate:"max=255"`

	// vendor
	BusinessName string `json:"businessName" validate:"max=255"`
	Category     string `json:"category" validate:"max=100"`
	Description  string `json:"description"`
	Country      string `json:"country" validate:"max=100"`
	State        string `json:"state" validate:"max=100"`
	City         string `json:"city" validate:"max=100"`
	Phone        string `json:"phone" validate:"max=50"`
	Website      string `json:"website" validate:"max=255"`
	Instagram    string `json:"instagram" validate:"max=255"`
	Facebook     string `json:"facebook" validate:"max=255"`
	TikTok       string `json:"tiktok" validate:"max=255"`
	Pinterest    string `json:"pinterest" validate:"max=255"`
}

type SetupProfileResponse struct {
	Success bool `json:"success"`
	Profile any  `json:"profile"`
}

// UpdateConsumerProfileRequest edits the caller's couple or individual profile.
// Fields that do not apply to the caller's role are ignored.
type UpdateConsumerProfileRequest struct {
	CoupleName  *string  `json:"coupleName" validate:"omitempty,max=255"`
	FullName    *string  `json:"fullName" validate:"omitempty,max=255"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Phone       *string  `json:"phone" validate:"omitempty,max=50"`
	PartnerName *string  `json:"partnerName" validate:"omitempty,max=255"`
	WeddingDate *Date    `json:"weddingDate"`
	EventType   *string  `json:"eventType" validate:"omitempty,max=100"`
	EventDate   *Date    `json:"eventDate"`
	Budget      *float64 `json:"budget" validate:"omitempty,gte=0"`
	SpentAmount *float64 `json:"spentAmount" validate:"omitempty,gte=0"`
	Venue       *string  `json:"venue" validate:"omitempty,max=255"`
	GuestCount  *int     `json:"guestCount" validate:"omitempty,gte=0"`
	Style       *string  `json:"style" validate:"omitempty,max=100"`
	Location    *string  `json:"location" validate:"omitempty,max=255"`
}
