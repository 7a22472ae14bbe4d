package dto

type SetAvailabilityRequest struct {
	Date        Date   `json:"date"`
	IsAvailable *bool  `json:"isAvailable" validate:"required"`
	EventType   string `json:"eventType" validate:"max=100"`
	EventTitle  string `json:"eventTitle" validate:"max=255"`
	Notes       string `json:"notes"`
}

type AvailabilityQuery struct {
	From string `query:"from"`
	To   string `query:"to"`
}
