package dto

import "github.com/wedsimplify/wedsimplify-backend/internal/models"

type SaveVendorRequest struct {
	VendorID string `json:"vendorId" validate:"required,uuid"`
}

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int64                 `json:"unread"`
}

type UpdateSettingsRequest struct {
	EmailNotifications *bool `json:"emailNotifications"`
	InquiryAlerts      *bool `json:"inquiryAlerts"`
	MarketingEmails    *bool `json:"marketingEmails"`
	ProfilePublic      *bool `json:"profilePublic"`
}
