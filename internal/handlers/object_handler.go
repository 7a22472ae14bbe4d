package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/identity"
	"github.com/wedsimplify/wedsimplify-backend/internal/services"
	"github.com/wedsimplify/wedsimplify-backend/internal/storage"
)

type ObjectHandler struct {
	objectService *services.ObjectService
}

func NewObjectHandler(objectService *services.ObjectService) *ObjectHandler {
	return &ObjectHandler{objectService: objectService}
}

func (h *ObjectHandler) UploadURL(c *fiber.Ctx) error {
	if _, err := currentUser(c); err != nil {
		return respondError(c, err)
	}

	resp, err := h.objectService.RequestUploadURL(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

func (h *ObjectHandler) AttachPortfolioImage(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.PortfolioImageRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.objectService.AttachPortfolioImage(c.UserContext(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

// Serve redirects to a short-lived download URL when the caller may read the object.
func (h *ObjectHandler) Serve(c *fiber.Ctx) error {
	url, err := h.objectService.ResolveObject(c.UserContext(), identity.OptionalUserID(c), storage.PathPrefix+c.Params("*"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Redirect(url, fiber.StatusTemporaryRedirect)
}
