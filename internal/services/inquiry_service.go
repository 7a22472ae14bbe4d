package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository"
)

// InquiryService runs the inquiry lifecycle:
//
//	pending -> responded | accepted | declined
//
// Only the vendor that received an inquiry may respond, and a later response
// replaces the earlier one.
type InquiryService struct {
	inquiries     repository.InquiryRepository
	profiles      *ProfileService
	vendors       *VendorService
	notifications *NotificationService
}

func NewInquiryService(inquiries repository.InquiryRepository, profiles *ProfileService, vendors *VendorService, notifications *NotificationService) *InquiryService {
	return &InquiryService{inquiries: inquiries, profiles: profiles, vendors: vendors, notifications: notifications}
}

func (s *InquiryService) CreateInquiry(ctx context.Context, userID uuid.UUID, req *dto.CreateInquiryRequest) (*models.Inquiry, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, NewValidationError("message", "is required")
	}
	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		return nil, NewValidationError("vendorId", "must be a valid UUID")
	}

	ref, err := s.profiles.ResolveConsumer(ctx, userID)
	if err != nil {
		return nil, err
	}
	vendor, err := s.vendors.ActiveVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	inquiry := &models.Inquiry{
		ID:            uuid.New(),
		ConsumerOwned: models.OwnedBy(ref),
		VendorID:      vendor.ID,
		Message:       message,
		Budget:        req.Budget,
		EventDate:     req.EventDate.Ptr(),
		Status:        models.InquiryPending,
	}
	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	s.notifications.NotifyInquiry(ctx, vendor.UserID,
		models.NotificationInquiryReceived,
		"New inquiry",
		message,
		"/inquiries/"+inquiry.ID.String(),
	)
	return inquiry, nil
}

// RespondToInquiry moves an inquiry to a response state on behalf of its vendor.
func (s *InquiryService) RespondToInquiry(ctx context.Context, userID, inquiryID uuid.UUID, req *dto.RespondInquiryRequest) (*models.Inquiry, error) {
	status := models.InquiryStatus(strings.TrimSpace(req.Status))
	if !status.IsResponse() {
		return nil, NewValidationError("status", "must be one of: responded accepted declined")
	}

	vendor, err := s.profiles.ResolveVendor(ctx, userID)
	if err != nil {
		return nil, err
	}
	inquiry, err := s.load(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	if inquiry.VendorID != vendor.ID {
		return nil, ErrNotInquiryPeer
	}

	text := req.Text()
	now := time.Now().UTC()
	err = s.inquiries.Respond(ctx, inquiry.ID, status, text, now)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInquiryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("respond to inquiry: %w", err)
	}
	inquiry.Status = status
	inquiry.VendorResponse = &text
	inquiry.UpdatedAt = now

	if consumerUser, ok := consumerUserID(inquiry); ok {
		s.notifications.NotifyInquiry(ctx, consumerUser,
			models.NotificationInquiryResponded,
			vendor.BusinessName+" replied to your inquiry",
			text,
			"/inquiries/"+inquiry.ID.String(),
		)
	}
	return inquiry, nil
}

// ListMine lists the caller's inquiries: sent ones for consumers, received
// ones for vendors.
func (s *InquiryService) ListMine(ctx context.Context, userID uuid.UUID) ([]models.Inquiry, error) {
	auth, err := s.profiles.ResolveAuthUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if auth.Role == models.RoleVendor {
		return s.ListReceived(ctx, userID)
	}
	return s.ListSent(ctx, userID)
}

func (s *InquiryService) ListSent(ctx context.Context, userID uuid.UUID) ([]models.Inquiry, error) {
	ref, err := s.profiles.ResolveConsumer(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.ListForConsumer(ctx, ref)
}

func (s *InquiryService) ListReceived(ctx context.Context, userID uuid.UUID) ([]models.Inquiry, error) {
	vendor, err := s.profiles.ResolveVendor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.ListForVendor(ctx, vendor.ID)
}

func (s *InquiryService) ListForConsumer(ctx context.Context, ref models.ConsumerRef) ([]models.Inquiry, error) {
	list, err := s.inquiries.ListByConsumer(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("list consumer inquiries: %w", err)
	}
	return list, nil
}

func (s *InquiryService) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Inquiry, error) {
	list, err := s.inquiries.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list vendor inquiries: %w", err)
	}
	return list, nil
}

// GetInquiry returns an inquiry to either of its two parties. Anyone else
// gets ErrInquiryNotFound.
func (s *InquiryService) GetInquiry(ctx context.Context, userID, inquiryID uuid.UUID) (*models.Inquiry, error) {
	inquiry, err := s.load(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	if inquiry.Vendor != nil && inquiry.Vendor.UserID == userID {
		return inquiry, nil
	}
	if owner, ok := consumerUserID(inquiry); ok && owner == userID {
		return inquiry, nil
	}
	return nil, ErrInquiryNotFound
}

func (s *InquiryService) load(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	inquiry, err := s.inquiries.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInquiryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load inquiry: %w", err)
	}
	return inquiry, nil
}

func consumerUserID(inquiry *models.Inquiry) (uuid.UUID, bool) {
	switch {
	case inquiry.Couple != nil:
		return inquiry.Couple.UserID, true
	case inquiry.Individual != nil:
		return inquiry.Individual.UserID, true
	}
	return uuid.Nil, false
}
