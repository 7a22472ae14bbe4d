package models

import (
	"time"

	"github.com/google/uuid"
)

type InquiryStatus string

const (
	InquiryPending   InquiryStatus = "pending"
	InquiryResponded InquiryStatus = "responded"
	InquiryAccepted  InquiryStatus = "accepted"
	InquiryDeclined  InquiryStatus = "declined"
)

// IsResponse reports whether a vendor response may move an inquiry to s.
// Pending is only ever the initial state.
func (s InquiryStatus) IsResponse() bool {
	switch s {
	case InquiryResponded, InquiryAccepted, InquiryDeclined:
		return true
	}
	return false
}

// Inquiry is a consumer's contact request to a vendor.
type Inquiry struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ConsumerOwned
	VendorID       uuid.UUID     `gorm:"type:uuid;not null;index" json:"vendorId"`
	Message        string        `gorm:"type:text;not null" json:"message"`
	Budget         *float64      `gorm:"type:decimal(10,2)" json:"budget,omitempty"`
	EventDate      *time.Time    `json:"eventDate,omitempty"`
	Status         InquiryStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	VendorResponse *string       `gorm:"type:text" json:"vendorResponse,omitempty"`
	CreatedAt      time.Time     `gorm:"index" json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	Couple         *Couple       `gorm:"foreignKey:CoupleID;constraint:OnDelete:CASCADE" json:"-"`
	Individual     *Individual   `gorm:"foreignKey:IndividualID;constraint:OnDelete:CASCADE" json:"-"`
	Vendor         *Vendor       `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"vendor,omitempty"`
}
