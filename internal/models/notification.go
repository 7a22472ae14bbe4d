package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationInquiryReceived  = "inquiry_received"
	NotificationInquiryResponded = "inquiry_responded"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Type      string    `gorm:"size:50;not null" json:"type"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	Link      string    `gorm:"size:500" json:"link,omitempty"`
	IsRead    bool      `gorm:"default:false;index" json:"isRead"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// UserSettings holds per-user preference flags. A missing row means
// DefaultSettings; the columns carry no SQL defaults so false survives inserts.
type UserSettings struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	EmailNotifications bool      `gorm:"not null" json:"emailNotifications"`
	InquiryAlerts      bool      `gorm:"not null" json:"inquiryAlerts"`
	MarketingEmails    bool      `gorm:"not null" json:"marketingEmails"`
	ProfilePublic      bool      `gorm:"not null" json:"profilePublic"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	User               User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// DefaultSettings returns the preferences used before a user saves any.
func DefaultSettings(userID uuid.UUID) UserSettings {
	return UserSettings{
		UserID:             userID,
		EmailNotifications: true,
		InquiryAlerts:      true,
		MarketingEmails:    false,
		ProfilePublic:      true,
	}
}
