package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository"
)

type SavedVendorService struct {
	saved   repository.SavedVendorRepository
	vendors *VendorService
}

func NewSavedVendorService(saved repository.SavedVendorRepository, vendors *VendorService) *SavedVendorService {
	return &SavedVendorService{saved: saved, vendors: vendors}
}

// SaveVendor adds a favorite. Saving the same vendor again returns the
// existing row.
func (s *SavedVendorService) SaveVendor(ctx context.Context, userID, vendorID uuid.UUID) (*models.SavedVendor, error) {
	if _, err := s.vendors.ActiveVendor(ctx, vendorID); err != nil {
		return nil, err
	}
	row, err := s.saved.Save(ctx, userID, vendorID)
	if err != nil {
		return nil, fmt.Errorf("save vendor: %w", err)
	}
	return row, nil
}

func (s *SavedVendorService) ListSaved(ctx context.Context, userID uuid.UUID) ([]models.SavedVendor, error) {
	list, err := s.saved.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved vendors: %w", err)
	}
	return list, nil
}

func (s *SavedVendorService) RemoveSaved(ctx context.Context, userID, vendorID uuid.UUID) error {
	err := s.saved.Delete(ctx, userID, vendorID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSavedVendorNotFound
	}
	if err != nil {
		return fmt.Errorf("remove saved vendor: %w", err)
	}
	return nil
}
