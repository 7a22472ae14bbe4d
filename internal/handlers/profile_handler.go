package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"github.com/wedsimplify/wedsimplify-backend/internal/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// SetupProfile performs the one-time profile setup for any role.
func (h *ProfileHandler) SetupProfile(c *fiber.Ctx) error {
	var req dto.SetupProfileRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	return h.setup(c, &req)
}

// CreateVendor is profile setup with the role fixed to vendor.
func (h *ProfileHandler) CreateVendor(c *fiber.Ctx) error {
	var req dto.SetupProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, services.NewValidationError("body", "Invalid request body"))
	}
	req.Role = string(models.RoleVendor)
	if fields := dto.Validate(&req); fields != nil {
		return respondError(c, &services.ValidationError{Fields: fields})
	}
	return h.setup(c, &req)
}

func (h *ProfileHandler) setup(c *fiber.Ctx, req *dto.SetupProfileRequest) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	profile, err := h.profileService.CompleteProfileSetup(c.UserContext(), userID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SetupProfileResponse{Success: true, Profile: profile})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateConsumerProfileRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	profile, err := h.profileService.UpdateConsumerProfile(c.UserContext(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}
