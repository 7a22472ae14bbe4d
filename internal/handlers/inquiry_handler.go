package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/services"
)

type InquiryHandler struct {
	inquiryService *services.InquiryService
}

func NewInquiryHandler(inquiryService *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.CreateInquiryRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	inquiry, err := h.inquiryService.CreateInquiry(c.UserContext(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(inquiry)
}

// List returns sent inquiries for consumers and received ones for vendors.
func (h *InquiryHandler) List(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	list, err := h.inquiryService.ListMine(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(list)
}

func (h *InquiryHandler) ListSent(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	list, err := h.inquiryService.ListSent(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(list)
}

func (h *InquiryHandler) ListReceived(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	list, err := h.inquiryService.ListReceived(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(list)
}

func (h *InquiryHandler) Get(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	inquiryID, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, services.ErrInquiryNotFound)
	}

	inquiry, err := h.inquiryService.GetInquiry(c.UserContext(), userID, inquiryID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(inquiry)
}

func (h *InquiryHandler) Respond(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	inquiryID, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, services.ErrInquiryNotFound)
	}

	var req dto.RespondInquiryRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	inquiry, err := h.inquiryService.RespondToInquiry(c.UserContext(), userID, inquiryID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(inquiry)
}
