package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VendorFilter narrows the public vendor directory. Empty fields do not filter.
type VendorFilter struct {
	Category string
	Location string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Limit    int
	Offset   int
}

type VendorRepository interface {
	Search(ctx context.Context, f VendorFilter) ([]models.Vendor, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	Update(ctx context.Context, vendor *models.Vendor) error

	ListPackages(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]models.VendorPackage, error)
	GetPackage(ctx context.Context, vendorID, id uuid.UUID) (*models.VendorPackage, error)
	CreatePackage(ctx context.Context, pkg *models.VendorPackage) error
	UpdatePackage(ctx context.Context, pkg *models.VendorPackage) error

	ListPortfolio(ctx context.Context, vendorID uuid.UUID) ([]models.PortfolioItem, error)
	CreatePortfolioItem(ctx context.Context, item *models.PortfolioItem) error
	DeletePortfolioItem(ctx context.Context, vendorID, id uuid.UUID) error
}

type VendorRepo struct {
	db *gorm.DB
}

func NewVendorRepo(db *gorm.DB) *VendorRepo {
	return &VendorRepo{db: db}
}

func (r *VendorRepo) Search(ctx context.Context, f VendorFilter) ([]models.Vendor, int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	vendors := make([]models.Vendor, 0, f.Limit)
	err := r.filtered(ctx, f).
		Order("rating DESC").
		Order("created_at ASC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&vendors).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return vendors, total, nil
}

// filtered builds the WHERE part of the directory query. A price bound
// matches vendors that have at least one active package inside it.
func (r *VendorRepo) filtered(ctx context.Context, f VendorFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Vendor{}).Where("vendors.is_active = ?", true)

	if f.Category != "" {
		q = q.Where("vendors.category = ?", f.Category)
	}
	if f.Location != "" {
		q = q.Where("vendors.location ILIKE ?", containsPattern(f.Location))
	}
	if f.Search != "" {
		p := containsPattern(f.Search)
		q = q.Where("(vendors.business_name ILIKE ? OR vendors.description ILIKE ?)", p, p)
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		sub := r.db.Model(&models.VendorPackage{}).
			Select("1").
			Where("vendor_packages.vendor_id = vendors.id AND vendor_packages.is_active = ?", true)
		if f.MinPrice != nil {
			sub = sub.Where("vendor_packages.price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			sub = sub.Where("vendor_packages.price <= ?", *f.MaxPrice)
		}
		q = q.Where("EXISTS (?)", sub)
	}
	return q
}

func (r *VendorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &vendor, nil
}

func (r *VendorRepo) Update(ctx context.Context, vendor *models.Vendor) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(vendor).Error)
}

func (r *VendorRepo) ListPackages(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]models.VendorPackage, error) {
	q := r.db.WithContext(ctx).Where("vendor_id = ?", vendorID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	packages := []models.VendorPackage{}
	if err := q.Order("price ASC").Order("created_at ASC").Find(&packages).Error; err != nil {
		return nil, translate(err)
	}
	return packages, nil
}

func (r *VendorRepo) GetPackage(ctx context.Context, vendorID, id uuid.UUID) (*models.VendorPackage, error) {
	var pkg models.VendorPackage
	err := r.db.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", id, vendorID).
		First(&pkg).Error
	if err != nil {
		return nil, translate(err)
	}
	return &pkg, nil
}

func (r *VendorRepo) CreatePackage(ctx context.Context, pkg *models.VendorPackage) error {
	if pkg.ID == uuid.Nil {
		pkg.ID = uuid.New()
	}
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(pkg).Error)
}

func (r *VendorRepo) UpdatePackage(ctx context.Context, pkg *models.VendorPackage) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(pkg).Error)
}

func (r *VendorRepo) ListPortfolio(ctx context.Context, vendorID uuid.UUID) ([]models.PortfolioItem, error) {
	items := []models.PortfolioItem{}
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("order_index ASC").
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *VendorRepo) CreatePortfolioItem(ctx context.Context, item *models.PortfolioItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error)
}

func (r *VendorRepo) DeletePortfolioItem(ctx context.Context, vendorID, id uuid.UUID) error {
	return affected(r.db.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", id, vendorID).
		Delete(&models.PortfolioItem{}))
}
