package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/services"
)

type CalendarHandler struct {
	calendarService *services.CalendarService
}

func NewCalendarHandler(calendarService *services.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// Mine lists the caller's own availability, optionally bounded by ?from=&to=.
func (h *CalendarHandler) Mine(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var q dto.AvailabilityQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, services.NewValidationError("query", "Invalid query parameters"))
	}

	days, err := h.calendarService.MyAvailability(c.UserContext(), userID, q.From, q.To)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(days)
}

func (h *CalendarHandler) Set(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.SetAvailabilityRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	day, err := h.calendarService.SetAvailability(c.UserContext(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(day)
}

func (h *CalendarHandler) Booked(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	days, err := h.calendarService.BookedDates(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(days)
}

// VendorAvailability is the public read of a vendor's calendar.
func (h *CalendarHandler) VendorAvailability(c *fiber.Ctx) error {
	vendorID, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, services.ErrVendorNotFound)
	}

	var q dto.AvailabilityQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, services.NewValidationError("query", "Invalid query parameters"))
	}

	days, err := h.calendarService.GetAvailability(c.UserContext(), vendorID, q.From, q.To)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(days)
}
