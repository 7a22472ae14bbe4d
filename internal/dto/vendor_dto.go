package dto

import "github.com/wedsimplify/wedsimplify-backend/internal/models"

// VendorSearchQuery is bound from the query string of GET /api/vendors.
type VendorSearchQuery struct {
	Category string   `query:"category"`
	Location string   `query:"location"`
	Search   string   `query:"search"`
	MinPrice *float64 `query:"minPrice"`
	MaxPrice *float64 `query:"maxPrice"`
	Limit    int      `query:"limit"`
	Offset   int      `query:"offset"`
}

type VendorListResponse struct {
	Vendors []models.Vendor `json:"vendors"`
	Total   int64           `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

// VendorDetail is a vendor with its active packages and ordered portfolio.
type VendorDetail struct {
	models.Vendor
	Packages  []models.VendorPackage `json:"packages"`
	Portfolio []models.PortfolioItem `json:"portfolio"`
}

type UpdateVendorRequest struct {
	BusinessName *string `json:"businessName" validate:"omitempty,min=1,max=255"`
	Category     *string `json:"category" validate:"omitempty,min=1,max=100"`
	Description  *string `json:"description"`
	Country      *string `json:"country" validate:"omitempty,max=100"`
	State        *string `json:"state" validate:"omitempty,max=100"`
	City         *string `json:"city" validate:"omitempty,max=100"`
	Location     *string `json:"location" validate:"omitempty,max=255"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Website      *string `json:"website" validate:"omitempty,max=255"`
	Instagram    *string `json:"instagram" validate:"omitempty,max=255"`
	Facebook     *string `json:"facebook" validate:"omitempty,max=255"`
	TikTok       *string `json:"tiktok" validate:"omitempty,max=255"`
	Pinterest    *string `json:"pinterest" validate:"omitempty,max=255"`
	IsActive     *bool   `json:"isActive"`
}

type PackageRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Duration    string   `json:"duration" validate:"max=100"`
	Features    []string `json:"features"`
}

type UpdatePackageRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Duration    *string   `json:"duration" validate:"omitempty,max=100"`
	Features    *[]string `json:"features"`
	IsActive    *bool     `json:"isActive"`
}

type PortfolioImageRequest struct {
	ImageURL    string `json:"imageURL" validate:"required"`
	Title       string `json:"title" validate:"max=255"`
	Description string `json:"description"`
	OrderIndex  int    `json:"orderIndex"`
}

type PortfolioImageResponse struct {
	ObjectPath    string                `json:"objectPath"`
	PortfolioItem *models.PortfolioItem `json:"portfolioItem"`
}

type UploadURLResponse struct {
	UploadURL  string `json:"uploadURL"`
	ObjectPath string `json:"objectPath"`
}

type Category struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
