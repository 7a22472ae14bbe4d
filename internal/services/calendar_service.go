package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository"
)

type CalendarService struct {
	calendar repository.CalendarRepository
	profiles *ProfileService
}

func NewCalendarService(calendar repository.CalendarRepository, profiles *ProfileService) *CalendarService {
	return &CalendarService{calendar: calendar, profiles: profiles}
}

// CalendarDay collapses t onto midnight UTC of its calendar day in UTC.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// GetAvailability lists a vendor's days in date order, optionally bounded
// by inclusive YYYY-MM-DD limits.
func (s *CalendarService) GetAvailability(ctx context.Context, vendorID uuid.UUID, from, to string) ([]models.VendorAvailability, error) {
	lo, err := parseBound("from", from)
	if err != nil {
		return nil, err
	}
	hi, err := parseBound("to", to)
	if err != nil {
		return nil, err
	}
	if lo != nil && hi != nil && lo.After(*hi) {
		return nil, NewValidationError("from", "must not be after to")
	}

	days, err := s.calendar.List(ctx, vendorID, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	return days, nil
}

// MyAvailability is GetAvailability for the caller's own vendor profile.
func (s *CalendarService) MyAvailability(ctx context.Context, userID uuid.UUID, from, to string) ([]models.VendorAvailability, error) {
	vendor, err := s.profiles.ResolveVendor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.GetAvailability(ctx, vendor.ID, from, to)
}

// SetAvailability stores the caller's availability for one calendar day.
// Repeated calls for the same day overwrite the single stored row.
func (s *CalendarService) SetAvailability(ctx context.Context, userID uuid.UUID, req *dto.SetAvailabilityRequest) (*models.VendorAvailability, error) {
	if req.Date.IsZero() {
		return nil, NewValidationError("date", "is required")
	}
	if req.IsAvailable == nil {
		return nil, NewValidationError("isAvailable", "is required")
	}

	vendor, err := s.profiles.ResolveVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	day := &models.VendorAvailability{
		ID:          uuid.New(),
		VendorID:    vendor.ID,
		Date:        CalendarDay(req.Date.Time),
		IsAvailable: *req.IsAvailable,
		EventType:   strings.TrimSpace(req.EventType),
		EventTitle:  strings.TrimSpace(req.EventTitle),
		Notes:       strings.TrimSpace(req.Notes),
	}
	if err := s.calendar.Upsert(ctx, day); err != nil {
		return nil, fmt.Errorf("set availability: %w", err)
	}
	return day, nil
}

// BookedDates lists the caller's unavailable days.
func (s *CalendarService) BookedDates(ctx context.Context, userID uuid.UUID) ([]models.VendorAvailability, error) {
	vendor, err := s.profiles.ResolveVendor(ctx, userID)
	if err != nil {
		return nil, err
	}
	days, err := s.calendar.ListBooked(ctx, vendor.ID)
	if err != nil {
		return nil, fmt.Errorf("list booked dates: %w", err)
	}
	return days, nil
}

func parseBound(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := dto.ParseDate(s)
	if err != nil {
		return nil, NewValidationError(field, err.Error())
	}
	day := CalendarDay(t)
	return &day, nil
}
