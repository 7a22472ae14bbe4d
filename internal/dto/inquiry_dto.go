package dto

import "strings"

type CreateInquiryRequest struct {
	VendorID  string   `json:"vendorId" validate:"required,uuid"`
	Message   string   `json:"message"`
	Budget    *float64 `json:"budget" validate:"omitempty,gte=0"`
	EventDate *Date    `json:"eventDate"`
}

// RespondInquiryRequest accepts the response text as either vendorResponse or response.
type RespondInquiryRequest struct {
	VendorResponse string `json:"vendorResponse"`
	Response       string `json:"response"`
	Status         string `json:"status" validate:"required"`
}

func (r RespondInquiryRequest) Text() string {
	if s := strings.TrimSpace(r.VendorResponse); s != "" {
		return s
	}
	return strings.TrimSpace(r.Response)
}
