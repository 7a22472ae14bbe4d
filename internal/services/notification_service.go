package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository"
)

const notificationPageSize = 50

type NotificationService struct {
	notifications repository.NotificationRepository
	settings      *SettingsService
}

func NewNotificationService(notifications repository.NotificationRepository, settings *SettingsService) *NotificationService {
	return &NotificationService{notifications: notifications, settings: settings}
}

// NotifyInquiry records an inquiry event for userID unless the user turned
// inquiry alerts off. Failures are logged; the triggering request still succeeds.
func (s *NotificationService) NotifyInquiry(ctx context.Context, userID uuid.UUID, kind, title, message, link string) {
	prefs, err := s.settings.Get(ctx, userID)
	if err != nil {
		slog.Warn("notification skipped: settings unavailable", "user_id", userID, "error", err)
		return
	}
	if !prefs.InquiryAlerts {
		return
	}

	n := &models.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
		Link:    link,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		slog.Error("failed to store notification", "user_id", userID, "type", kind, "error", err)
	}
}

func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool) (*dto.NotificationListResponse, error) {
	list, err := s.notifications.List(ctx, userID, unreadOnly, notificationPageSize)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	unread, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count notifications: %w", err)
	}
	return &dto.NotificationListResponse{Notifications: list, Unread: unread}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	err := s.notifications.MarkRead(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotificationNotFound
	}
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark notifications read: %w", err)
	}
	return n, nil
}

type SettingsService struct {
	settings repository.SettingsRepository
}

func NewSettingsService(settings repository.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Get returns the stored preferences or the defaults when none were saved.
func (s *SettingsService) Get(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	prefs, err := s.settings.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		defaults := models.DefaultSettings(userID)
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return prefs, nil
}

func (s *SettingsService) Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateSettingsRequest) (*models.UserSettings, error) {
	prefs, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.EmailNotifications != nil {
		prefs.EmailNotifications = *req.EmailNotifications
	}
	if req.InquiryAlerts != nil {
		prefs.InquiryAlerts = *req.InquiryAlerts
	}
	if req.MarketingEmails != nil {
		prefs.MarketingEmails = *req.MarketingEmails
	}
	if req.ProfilePublic != nil {
		prefs.ProfilePublic = *req.ProfilePublic
	}
	if err := s.settings.Upsert(ctx, prefs); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return prefs, nil
}
