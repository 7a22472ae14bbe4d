package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error)
	ListByConsumer(ctx context.Context, ref models.ConsumerRef) ([]models.Inquiry, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Inquiry, error)
	Respond(ctx context.Context, id uuid.UUID, status models.InquiryStatus, response string, at time.Time) error
}

type InquiryRepo struct {
	db *gorm.DB
}

func NewInquiryRepo(db *gorm.DB) *InquiryRepo {
	return &InquiryRepo{db: db}
}

func (r *InquiryRepo) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.ID == uuid.Nil {
		inquiry.ID = uuid.New()
	}
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(inquiry).Error)
}

// GetByID loads the inquiry with both parties so callers can check ownership
// and address notifications.
func (r *InquiryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Preload("Couple").
		Preload("Individual").
		First(&inquiry, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &inquiry, nil
}

func (r *InquiryRepo) ListByConsumer(ctx context.Context, ref models.ConsumerRef) ([]models.Inquiry, error) {
	inquiries := []models.Inquiry{}
	err := r.db.WithContext(ctx).
		Scopes(ref.Scope()).
		Preload("Vendor").
		Order("created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, translate(err)
	}
	return inquiries, nil
}

func (r *InquiryRepo) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Inquiry, error) {
	inquiries := []models.Inquiry{}
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, translate(err)
	}
	return inquiries, nil
}

// Respond stores the vendor's answer and stamps updated_at with at.
func (r *InquiryRepo) Respond(ctx context.Context, id uuid.UUID, status models.InquiryStatus, response string, at time.Time) error {
	return affected(r.db.WithContext(ctx).Model(&models.Inquiry{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":          status,
			"vendor_response": response,
			"updated_at":      at,
		}))
}
