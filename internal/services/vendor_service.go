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

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// VendorDetailCache stores assembled vendor pages. Implementations swallow
// their own failures; a miss always falls through to the database.
type VendorDetailCache interface {
	Get(ctx context.Context, vendorID uuid.UUID) (*dto.VendorDetail, bool)
	Set(ctx context.Context, detail *dto.VendorDetail)
	Invalidate(ctx context.Context, vendorID uuid.UUID)
}

type VendorService struct {
	vendors    repository.VendorRepository
	profiles   *ProfileService
	categories CategoryCatalog
	cache      VendorDetailCache
}

func NewVendorService(vendors repository.VendorRepository, profiles *ProfileService, categories CategoryCatalog, cache VendorDetailCache) *VendorService {
	return &VendorService{vendors: vendors, profiles: profiles, categories: categories, cache: cache}
}

// Search lists active vendors, best rated first.
func (s *VendorService) Search(ctx context.Context, q *dto.VendorSearchQuery) (*dto.VendorListResponse, error) {
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return nil, NewValidationError("minPrice", "must not exceed maxPrice")
	}
	verr := &ValidationError{}
	if q.MinPrice != nil && *q.MinPrice < 0 {
		verr.Add("minPrice", "must be greater than or equal to 0")
	}
	if q.MaxPrice != nil && *q.MaxPrice < 0 {
		verr.Add("maxPrice", "must be greater than or equal to 0")
	}
	if q.Offset < 0 {
		verr.Add("offset", "must be greater than or equal to 0")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	category := strings.TrimSpace(q.Category)
	if c, ok := s.lookupCategory(category); ok {
		category = c.Name
	}

	vendors, total, err := s.vendors.Search(ctx, repository.VendorFilter{
		Category: category,
		Location: strings.TrimSpace(q.Location),
		Search:   strings.TrimSpace(q.Search),
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Limit:    limit,
		Offset:   q.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("search vendors: %w", err)
	}
	return &dto.VendorListResponse{Vendors: vendors, Total: total, Limit: limit, Offset: q.Offset}, nil
}

// GetVendorDetail returns an active vendor with its active packages and portfolio.
func (s *VendorService) GetVendorDetail(ctx context.Context, vendorID uuid.UUID) (*dto.VendorDetail, error) {
	if detail, ok := s.cache.Get(ctx, vendorID); ok {
		return detail, nil
	}

	vendor, err := s.vendors.GetByID(ctx, vendorID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrVendorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load vendor: %w", err)
	}
	if !vendor.IsActive {
		return nil, ErrVendorNotFound
	}

	packages, err := s.vendors.ListPackages(ctx, vendorID, true)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	portfolio, err := s.vendors.ListPortfolio(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("load portfolio: %w", err)
	}

	detail := &dto.VendorDetail{Vendor: *vendor, Packages: packages, Portfolio: portfolio}
	s.cache.Set(ctx, detail)
	return detail, nil
}

// ActiveVendor loads a vendor that can receive inquiries and favorites.
func (s *VendorService) ActiveVendor(ctx context.Context, vendorID uuid.UUID) (*models.Vendor, error) {
	vendor, err := s.vendors.GetByID(ctx, vendorID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrVendorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load vendor: %w", err)
	}
	if !vendor.IsActive {
		return nil, ErrVendorNotFound
	}
	return vendor, nil
}

// UpdateVendorProfile applies a partial update to the caller's vendor row.
func (s *VendorService) UpdateVendorProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateVendorRequest) (*models.Vendor, error) {
	vendor, err := s.profiles.ResolveVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		c, ok := s.lookupCategory(strings.TrimSpace(*req.Category))
		if !ok {
			return nil, NewValidationError("category", "is not a known vendor category")
		}
		vendor.Category = c.Name
	}
	if req.BusinessName != nil {
		if strings.TrimSpace(*req.BusinessName) == "" {
			return nil, NewValidationError("businessName", "must not be empty")
		}
		vendor.BusinessName = strings.TrimSpace(*req.BusinessName)
	}
	setString(&vendor.Description, req.Description)
	setString(&vendor.Country, req.Country)
	setString(&vendor.State, req.State)
	setString(&vendor.City, req.City)
	setString(&vendor.Phone, req.Phone)
	setString(&vendor.Email, req.Email)
	setString(&vendor.Website, req.Website)
	setString(&vendor.Instagram, req.Instagram)
	setString(&vendor.Facebook, req.Facebook)
	setString(&vendor.TikTok, req.TikTok)
	setString(&vendor.Pinterest, req.Pinterest)
	if req.Location != nil {
		setString(&vendor.Location, req.Location)
	} else if req.City != nil || req.State != nil || req.Country != nil {
		vendor.Location = strings.Join([]string{vendor.City, vendor.State, vendor.Country}, ", ")
	}
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}

	if err := s.vendors.Update(ctx, vendor); err != nil {
		return nil, fmt.Errorf("update vendor: %w", err)
	}
	s.cache.Invalidate(ctx, vendor.ID)
	return vendor, nil
}

// ListPackages returns every package of the caller, inactive ones included.
func (s *VendorService) ListPackages(ctx context.Context, userID uuid.UUID) ([]models.VendorPackage, error) {
	vendor, err := s.profiles.ResolveVendor(ctx, userID)
	if err != nil {
		return nil, err
	}
	packages, err := s.vendors.ListPackages(ctx, vendor.ID, false)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return packages, nil
}

func (s *VendorService) CreatePackage(ctx context.Context, userID uuid.UUID, req *dto.PackageRequest) (*models.VendorPackage, error) {
	vendor, err := s.profiles.ResolveVendor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, NewValidationError("name", "is required")
	}

	pkg := &models.VendorPackage{
		ID:          uuid.New(),
		VendorID:    vendor.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       *req.Price,
		Duration:    strings.TrimSpace(req.Duration),
		Features:    cleanFeatures(req.Features),
		IsActive:    true,
	}
	if err := s.vendors.CreatePackage(ctx, pkg); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}
	s.cache.Invalidate(ctx, vendor.ID)
	return pkg, nil
}

func (s *VendorService) UpdatePackage(ctx context.Context, userID, packageID uuid.UUID, req *dto.UpdatePackageRequest) (*models.VendorPackage, error) {
	vendor, err := s.profiles.ResolveVendor(ctx, userID)
	if err != nil {
		return nil, err
	}
	pkg, err := s.ownPackage(ctx, vendor.ID, packageID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		pkg.Name = strings.TrimSpace(*req.Name)
	}
	setString(&pkg.Description, req.Description)
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	setString(&pkg.Duration, req.Duration)
	if req.Features != nil {
		pkg.Features = cleanFeatures(*req.Features)
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}

	if err := s.vendors.UpdatePackage(ctx, pkg); err != nil {
		return nil, fmt.Errorf("update package: %w", err)
	}
	s.cache.Invalidate(ctx, vendor.ID)
	return pkg, nil
}

// DeletePackage hides the package from the public listing.
func (s *VendorService) DeletePackage(ctx context.Context, userID, packageID uuid.UUID) error {
	vendor, err := s.profiles.ResolveVendor(ctx, userID)
	if err != nil {
		return err
	}
	pkg, err := s.ownPackage(ctx, vendor.ID, packageID)
	if err != nil {
		return err
	}
	pkg.IsActive = false
	if err := s.vendors.UpdatePackage(ctx, pkg); err != nil {
		return fmt.Errorf("deactivate package: %w", err)
	}
	s.cache.Invalidate(ctx, vendor.ID)
	return nil
}

func (s *VendorService) ownPackage(ctx context.Context, vendorID, packageID uuid.UUID) (*models.VendorPackage, error) {
	pkg, err := s.vendors.GetPackage(ctx, vendorID, packageID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}
	return pkg, nil
}

func (s *VendorService) ListPortfolio(ctx context.Context, userID uuid.UUID) ([]models.PortfolioItem, error) {
	vendor, err := s.profiles.ResolveVendor(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.vendors.ListPortfolio(ctx, vendor.ID)
	if err != nil {
		return nil, fmt.Errorf("list portfolio: %w", err)
	}
	return items, nil
}

// AddPortfolioItem appends an image to the vendor's portfolio.
func (s *VendorService) AddPortfolioItem(ctx context.Context, vendorID uuid.UUID, item *models.PortfolioItem) error {
	item.VendorID = vendorID
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if err := s.vendors.CreatePortfolioItem(ctx, item); err != nil {
		return fmt.Errorf("create portfolio item: %w", err)
	}
	s.cache.Invalidate(ctx, vendorID)
	return nil
}

func (s *VendorService) DeletePortfolioItem(ctx context.Context, userID, itemID uuid.UUID) error {
	vendor, err := s.profiles.ResolveVendor(ctx, userID)
	if err != nil {
		return err
	}
	err = s.vendors.DeletePortfolioItem(ctx, vendor.ID, itemID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPortfolioItemNotFound
	}
	if err != nil {
		return fmt.Errorf("delete portfolio item: %w", err)
	}
	s.cache.Invalidate(ctx, vendor.ID)
	return nil
}

func (s *VendorService) Categories() []dto.Category {
	if s.categories == nil {
		return []dto.Category{}
	}
	return s.categories.All()
}

func (s *VendorService) lookupCategory(name string) (dto.Category, bool) {
	if name == "" {
		return dto.Category{}, false
	}
	if s.categories == nil {
		return dto.Category{Name: name}, true
	}
	return s.categories.Lookup(name)
}

func cleanFeatures(in []string) []string {
	out := make([]string, 0, len(in))
	for _, f := range in {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
