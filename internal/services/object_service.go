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
	"github.com/wedsimplify/wedsimplify-backend/internal/storage"
)

// Object ACL policy, stored as object tags.
const (
	TagOwner          = "owner"
	TagVisibility     = "visibility"
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

const downloadURLExpiry = 15 * time.Minute

type ObjectStore interface {
	PresignPut(ctx context.Context, key string, expiry time.Duration) (string, error)
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	SetTags(ctx context.Context, key string, values map[string]string) error
	Tags(ctx context.Context, key string) (map[string]string, error)
	NormalizePath(raw string) (string, error)
}

type ObjectService struct {
	store        ObjectStore
	profiles     *ProfileService
	vendors      *VendorService
	uploadExpiry time.Duration
}

func NewObjectService(store ObjectStore, profiles *ProfileService, vendors *VendorService, uploadExpiry time.Duration) *ObjectService {
	return &ObjectService{store: store, profiles: profiles, vendors: vendors, uploadExpiry: uploadExpiry}
}

// RequestUploadURL reserves a fresh key and returns a presigned PUT URL for it.
func (s *ObjectService) RequestUploadURL(ctx context.Context) (*dto.UploadURLResponse, error) {
	key := "uploads/" + uuid.NewString()
	u, err := s.store.PresignPut(ctx, key, s.uploadExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}
	return &dto.UploadURLResponse{UploadURL: u, ObjectPath: storage.PathPrefix + key}, nil
}

// AttachPortfolioImage publishes an uploaded object and adds it to the
// caller's portfolio.
func (s *ObjectService) AttachPortfolioImage(ctx context.Context, userID uuid.UUID, req *dto.PortfolioImageRequest) (*dto.PortfolioImageResponse, error) {
	if strings.TrimSpace(req.ImageURL) == "" {
		return nil, NewValidationError("imageURL", "is required")
	}
	vendor, err := s.profiles.ResolveVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	objectPath, err := s.store.NormalizePath(req.ImageURL)
	if err != nil {
		return nil, NewValidationError("imageURL", err.Error())
	}
	key, err := storage.KeyFromPath(objectPath)
	if err != nil {
		return nil, NewValidationError("imageURL", err.Error())
	}

	err = s.store.SetTags(ctx, key, map[string]string{
		TagOwner:      userID.String(),
		TagVisibility: VisibilityPublic,
	})
	if errors.Is(err, storage.ErrObjectMissing) {
		return nil, ErrObjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("set object policy: %w", err)
	}

	item := &models.PortfolioItem{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		ImageURL:    objectPath,
		OrderIndex:  req.OrderIndex,
	}
	if err := s.vendors.AddPortfolioItem(ctx, vendor.ID, item); err != nil {
		return nil, err
	}
	return &dto.PortfolioImageResponse{ObjectPath: objectPath, PortfolioItem: item}, nil
}

// ResolveObject returns a short-lived download URL when the policy allows the
// caller to read the object. userID is uuid.Nil for anonymous callers.
func (s *ObjectService) ResolveObject(ctx context.Context, userID uuid.UUID, objectPath string) (string, error) {
	key, err := storage.KeyFromPath(objectPath)
	if err != nil {
		return "", ErrObjectNotFound
	}

	policy, err := s.store.Tags(ctx, key)
	if errors.Is(err, storage.ErrObjectMissing) {
		return "", ErrObjectNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read object policy: %w", err)
	}

	public := policy[TagVisibility] == VisibilityPublic
	owner := userID != uuid.Nil && policy[TagOwner] == userID.String()
	if !public && !owner {
		return "", fmt.Errorf("%w: object is private", ErrForbidden)
	}

	u, err := s.store.PresignGet(ctx, key, downloadURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return u, nil
}
