package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/services"
)

type PlanningHandler struct {
	planningService *services.PlanningService
}

func NewPlanningHandler(planningService *services.PlanningService) *PlanningHandler {
	return &PlanningHandler{planningService: planningService}
}

func (h *PlanningHandler) ListBudget(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	items, err := h.planningService.ListBudget(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(items)
}

func (h *PlanningHandler) CreateBudgetItem(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.BudgetItemRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	item, err := h.planningService.CreateBudgetItem(c.UserContext(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *PlanningHandler) UpdateBudgetItem(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	itemID, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, services.ErrBudgetItemNotFound)
	}

	var req dto.UpdateBudgetItemRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	item, err := h.planningService.UpdateBudgetItem(c.UserContext(), userID, itemID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(item)
}

func (h *PlanningHandler) DeleteBudgetItem(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	itemID, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, services.ErrBudgetItemNotFound)
	}

	if err := h.planningService.DeleteBudgetItem(c.UserContext(), userID, itemID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PlanningHandler) BudgetSummary(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	summary, err := h.planningService.BudgetSummary(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(summary)
}

func (h *PlanningHandler) ListTimeline(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	items, err := h.planningService.ListTimeline(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(items)
}

func (h *PlanningHandler) CreateTimelineItem(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.TimelineItemRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	item, err := h.planningService.CreateTimelineItem(c.UserContext(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *PlanningHandler) UpdateTimelineItem(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	itemID, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, services.ErrTimelineItemNotFound)
	}

	var req dto.UpdateTimelineItemRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	item, err := h.planningService.UpdateTimelineItem(c.UserContext(), userID, itemID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(item)
}

func (h *PlanningHandler) DeleteTimelineItem(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	itemID, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, services.ErrTimelineItemNotFound)
	}

	if err := h.planningService.DeleteTimelineItem(c.UserContext(), userID, itemID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
