package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/services"
)

type VendorHandler struct {
	vendorService *services.VendorService
}

func NewVendorHandler(vendorService *services.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

func (h *VendorHandler) Search(c *fiber.Ctx) error {
	var q dto.VendorSearchQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, services.NewValidationError("query", "Invalid query parameters"))
	}

	resp, err := h.vendorService.Search(c.UserContext(), &q)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

func (h *VendorHandler) Detail(c *fiber.Ctx) error {
	vendorID, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, services.ErrVendorNotFound)
	}

	detail, err := h.vendorService.GetVendorDetail(c.UserContext(), vendorID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(detail)
}

func (h *VendorHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.vendorService.Categories())
}

func (h *VendorHandler) Update(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateVendorRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	vendor, err := h.vendorService.UpdateVendorProfile(c.UserContext(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(vendor)
}

func (h *VendorHandler) ListPackages(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	packages, err := h.vendorService.ListPackages(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(packages)
}

func (h *VendorHandler) CreatePackage(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.PackageRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	pkg, err := h.vendorService.CreatePackage(c.UserContext(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(pkg)
}

func (h *VendorHandler) UpdatePackage(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	packageID, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, services.ErrPackageNotFound)
	}

	var req dto.UpdatePackageRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	pkg, err := h.vendorService.UpdatePackage(c.UserContext(), userID, packageID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(pkg)
}

func (h *VendorHandler) DeletePackage(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	packageID, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, services.ErrPackageNotFound)
	}

	if err := h.vendorService.DeletePackage(c.UserContext(), userID, packageID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *VendorHandler) ListPortfolio(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	items, err := h.vendorService.ListPortfolio(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(items)
}

func (h *VendorHandler) DeletePortfolioItem(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	itemID, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, services.ErrPortfolioItemNotFound)
	}

	if err := h.vendorService.DeletePortfolioItem(c.UserContext(), userID, itemID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
