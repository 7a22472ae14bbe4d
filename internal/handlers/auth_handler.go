package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/services"
)

type AuthHandler struct {
	authService    *services.AuthService
	profileService *services.ProfileService
}

func NewAuthHandler(authService *services.AuthService, profileService *services.ProfileService) *AuthHandler {
	return &AuthHandler{authService: authService, profileService: profileService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.authService.Refresh(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	if err := h.authService.Logout(c.UserContext(), &req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.DeleteAccountRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	if err := h.authService.DeleteAccount(c.UserContext(), userID, req.Password); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Account deleted successfully"})
}

// CurrentUser returns the caller and, once setup is done, their role profile.
// roleData is null until then.
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	auth, err := h.profileService.ResolveAuthUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.AuthUserResponse{User: auth.User, RoleData: auth.RoleData})
}
