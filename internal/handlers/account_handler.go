package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/services"
)

// AccountHandler serves the per-user resources: saved vendors, notifications and settings.
type AccountHandler struct {
	savedService        *services.SavedVendorService
	notificationService *services.NotificationService
	settingsService     *services.SettingsService
}

func NewAccountHandler(
	savedService *services.SavedVendorService,
	notificationService *services.NotificationService,
	settingsService *services.SettingsService,
) *AccountHandler {
	return &AccountHandler{
		savedService:        savedService,
		notificationService: notificationService,
		settingsService:     settingsService,
	}
}

func (h *AccountHandler) ListSaved(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	saved, err := h.savedService.ListSaved(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(saved)
}

func (h *AccountHandler) SaveVendor(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.SaveVendorRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		return respondError(c, services.NewValidationError("vendorId", "must be a valid UUID"))
	}

	saved, err := h.savedService.SaveVendor(c.UserContext(), userID, vendorID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *AccountHandler) RemoveSaved(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	vendorID, err := paramUUID(c, "vendorId")
	if err != nil {
		return respondError(c, services.ErrSavedVendorNotFound)
	}

	if err := h.savedService.RemoveSaved(c.UserContext(), userID, vendorID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AccountHandler) ListNotifications(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.notificationService.List(c.UserContext(), userID, c.QueryBool("unreadOnly"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

func (h *AccountHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, services.ErrNotificationNotFound)
	}

	if err := h.notificationService.MarkRead(c.UserContext(), userID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Notification marked as read"})
}

func (h *AccountHandler) MarkAllRead(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	n, err := h.notificationService.MarkAllRead(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"updated": n})
}

func (h *AccountHandler) GetSettings(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	settings, err := h.settingsService.Get(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(settings)
}

func (h *AccountHandler) UpdateSettings(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateSettingsRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	settings, err := h.settingsService.Update(c.UserContext(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(settings)
}
