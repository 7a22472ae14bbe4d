package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository"
)

// PlanningService owns the budget and timeline of a consumer. Rows of other
// consumers are indistinguishable from missing ones.
type PlanningService struct {
	planning repository.PlanningRepository
	profiles *ProfileService
}

func NewPlanningService(planning repository.PlanningRepository, profiles *ProfileService) *PlanningService {
	return &PlanningService{planning: planning, profiles: profiles}
}

func (s *PlanningService) ListBudget(ctx context.Context, userID uuid.UUID) ([]models.BudgetItem, error) {
	ref, err := s.profiles.ResolveConsumer(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.planning.ListBudget(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("list budget: %w", err)
	}
	return items, nil
}

func (s *PlanningService) CreateBudgetItem(ctx context.Context, userID uuid.UUID, req *dto.BudgetItemRequest) (*models.BudgetItem, error) {
	verr := &ValidationError{}
	if strings.TrimSpace(req.Category) == "" {
		verr.Add("category", "is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		verr.Add("description", "is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	ref, err := s.profiles.ResolveConsumer(ctx, userID)
	if err != nil {
		return nil, err
	}
	item := &models.BudgetItem{
		ID:            uuid.New(),
		ConsumerOwned: models.OwnedBy(ref),
		Category:      strings.TrimSpace(req.Category),
		Description:   strings.TrimSpace(req.Description),
		EstimatedCost: req.EstimatedCost,
		ActualCost:    req.ActualCost,
		IsPaid:        req.IsPaid,
		Notes:         strings.TrimSpace(req.Notes),
	}
	if err := s.planning.CreateBudgetItem(ctx, item); err != nil {
		return nil, fmt.Errorf("create budget item: %w", err)
	}
	return item, nil
}

func (s *PlanningService) UpdateBudgetItem(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateBudgetItemRequest) (*models.BudgetItem, error) {
	ref, err := s.profiles.ResolveConsumer(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, err := s.planning.GetBudgetItem(ctx, ref, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBudgetItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load budget item: %w", err)
	}

	if req.Category != nil {
		if strings.TrimSpace(*req.Category) == "" {
			return nil, NewValidationError("category", "must not be empty")
		}
		item.Category = strings.TrimSpace(*req.Category)
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, NewValidationError("description", "must not be empty")
		}
		item.Description = strings.TrimSpace(*req.Description)
	}
	if req.EstimatedCost != nil {
		item.EstimatedCost = req.EstimatedCost
	}
	if req.ActualCost != nil {
		item.ActualCost = req.ActualCost
	}
	if req.IsPaid != nil {
		item.IsPaid = *req.IsPaid
	}
	setString(&item.Notes, req.Notes)

	if err := s.planning.UpdateBudgetItem(ctx, item); err != nil {
		return nil, fmt.Errorf("update budget item: %w", err)
	}
	return item, nil
}

func (s *PlanningService) DeleteBudgetItem(ctx context.Context, userID, id uuid.UUID) error {
	ref, err := s.profiles.ResolveConsumer(ctx, userID)
	if err != nil {
		return err
	}
	err = s.planning.DeleteBudgetItem(ctx, ref, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrBudgetItemNotFound
	}
	if err != nil {
		return fmt.Errorf("delete budget item: %w", err)
	}
	return nil
}

// BudgetSummary totals the caller's budget items. Remaining is only set when
// the profile carries an overall budget.
func (s *PlanningService) BudgetSummary(ctx context.Context, userID uuid.UUID) (*dto.BudgetSummary, error) {
	auth, err := s.profiles.ResolveAuthUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.ListBudget(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &dto.BudgetSummary{ItemCount: len(items)}
	for _, item := range items {
		if item.EstimatedCost != nil {
			summary.EstimatedTotal += *item.EstimatedCost
		}
		if item.ActualCost != nil {
			summary.ActualTotal += *item.ActualCost
			if item.IsPaid {
				summary.PaidTotal += *item.ActualCost
			}
		}
	}

	switch p := auth.RoleData.(type) {
	case *models.Couple:
		summary.TotalBudget = p.Budget
	case *models.Individual:
		summary.TotalBudget = p.Budget
	}
	if summary.TotalBudget != nil {
		remaining := *summary.TotalBudget - summary.ActualTotal
		summary.Remaining = &remaining
	}
	return summary, nil
}

func (s *PlanningService) ListTimeline(ctx context.Context, userID uuid.UUID) ([]models.TimelineItem, error) {
	ref, err := s.profiles.ResolveConsumer(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.planning.ListTimeline(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("list timeline: %w", err)
	}
	return items, nil
}

func (s *PlanningService) CreateTimelineItem(ctx context.Context, userID uuid.UUID, req *dto.TimelineItemRequest) (*models.TimelineItem, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, NewValidationError("title", "is required")
	}
	priority := models.PriorityMedium
	if req.Priority != "" {
		priority = models.Priority(req.Priority)
		if !priority.Valid() {
			return nil, NewValidationError("priority", "must be one of: low medium high")
		}
	}

	ref, err := s.profiles.ResolveConsumer(ctx, userID)
	if err != nil {
		return nil, err
	}
	item := &models.TimelineItem{
		ID:            uuid.New(),
		ConsumerOwned: models.OwnedBy(ref),
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		DueDate:       req.DueDate.Ptr(),
		Category:      strings.TrimSpace(req.Category),
		IsCompleted:   req.IsCompleted,
		Priority:      priority,
	}
	if err := s.planning.CreateTimelineItem(ctx, item); err != nil {
		return nil, fmt.Errorf("create timeline item: %w", err)
	}
	return item, nil
}

func (s *PlanningService) UpdateTimelineItem(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTimelineItemRequest) (*models.TimelineItem, error) {
	ref, err := s.profiles.ResolveConsumer(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, err := s.planning.GetTimelineItem(ctx, ref, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTimelineItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load timeline item: %w", err)
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, NewValidationError("title", "must not be empty")
		}
		item.Title = strings.TrimSpace(*req.Title)
	}
	setString(&item.Description, req.Description)
	switch {
	case req.ClearDueDate:
		item.DueDate = nil
	case req.DueDate != nil:
		item.DueDate = req.DueDate.Ptr()
	}
	setString(&item.Category, req.Category)
	if req.Priority != nil {
		p := models.Priority(*req.Priority)
		if !p.Valid() {
			return nil, NewValidationError("priority", "must be one of: low medium high")
		}
		item.Priority = p
	}
	if req.IsCompleted != nil {
		item.IsCompleted = *req.IsCompleted
	}

	if err := s.planning.UpdateTimelineItem(ctx, item); err != nil {
		return nil, fmt.Errorf("update timeline item: %w", err)
	}
	return item, nil
}

func (s *PlanningService) DeleteTimelineItem(ctx context.Context, userID, id uuid.UUID) error {
	ref, err := s.profiles.ResolveConsumer(ctx, userID)
	if err != nil {
		return err
	}
	err = s.planning.DeleteTimelineItem(ctx, ref, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTimelineItemNotFound
	}
	if err != nil {
		return fmt.Errorf("delete timeline item: %w", err)
	}
	return nil
}
