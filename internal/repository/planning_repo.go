package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlanningRepository stores budget and timeline rows. Every lookup is scoped
// to the owning consumer, so a foreign row reads as ErrNotFound.
type PlanningRepository interface {
	ListBudget(ctx context.Context, owner models.ConsumerRef) ([]models.BudgetItem, error)
	GetBudgetItem(ctx context.Context, owner models.ConsumerRef, id uuid.UUID) (*models.BudgetItem, error)
	CreateBudgetItem(ctx context.Context, item *models.BudgetItem) error
	UpdateBudgetItem(ctx context.Context, item *models.BudgetItem) error
	DeleteBudgetItem(ctx context.Context, owner models.ConsumerRef, id uuid.UUID) error

	ListTimeline(ctx context.Context, owner models.ConsumerRef) ([]models.TimelineItem, error)
	GetTimelineItem(ctx context.Context, owner models.ConsumerRef, id uuid.UUID) (*models.TimelineItem, error)
	CreateTimelineItem(ctx context.Context, item *models.TimelineItem) error
	UpdateTimelineItem(ctx context.Context, item *models.TimelineItem) error
	DeleteTimelineItem(ctx context.Context, owner models.ConsumerRef, id uuid.UUID) error
}

type PlanningRepo struct {
	db *gorm.DB
}

func NewPlanningRepo(db *gorm.DB) *PlanningRepo {
	return &PlanningRepo{db: db}
}

func (r *PlanningRepo) ListBudget(ctx context.Context, owner models.ConsumerRef) ([]models.BudgetItem, error) {
	items := []models.BudgetItem{}
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope()).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *PlanningRepo) GetBudgetItem(ctx context.Context, owner models.ConsumerRef, id uuid.UUID) (*models.BudgetItem, error) {
	var item models.BudgetItem
	if err := r.db.WithContext(ctx).Scopes(owner.Scope()).First(&item, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *PlanningRepo) CreateBudgetItem(ctx context.Context, item *models.BudgetItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error)
}

func (r *PlanningRepo) UpdateBudgetItem(ctx context.Context, item *models.BudgetItem) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error)
}

func (r *PlanningRepo) DeleteBudgetItem(ctx context.Context, owner models.ConsumerRef, id uuid.UUID) error {
	return affected(r.db.WithContext(ctx).
		Scopes(owner.Scope()).
		Where("id = ?", id).
		Delete(&models.BudgetItem{}))
}

func (r *PlanningRepo) ListTimeline(ctx context.Context, owner models.ConsumerRef) ([]models.TimelineItem, error) {
	items := []models.TimelineItem{}
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope()).
		Order("due_date ASC NULLS LAST").
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *PlanningRepo) GetTimelineItem(ctx context.Context, owner models.ConsumerRef, id uuid.UUID) (*models.TimelineItem, error) {
	var item models.TimelineItem
	if err := r.db.WithContext(ctx).Scopes(owner.Scope()).First(&item, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *PlanningRepo) CreateTimelineItem(ctx context.Context, item *models.TimelineItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error)
}

func (r *PlanningRepo) UpdateTimelineItem(ctx context.Context, item *models.TimelineItem) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error)
}

func (r *PlanningRepo) DeleteTimelineItem(ctx context.Context, owner models.ConsumerRef, id uuid.UUID) error {
	return affected(r.db.WithContext(ctx).
		Scopes(owner.Scope()).
		Where("id = ?", id).
		Delete(&models.TimelineItem{}))
}
