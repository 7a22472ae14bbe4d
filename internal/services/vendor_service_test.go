package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository"
)

func TestSearch_DefaultsAndCanonicalCategory(t *testing.T) {
	f := newFixture(t)
	luma := models.Vendor{ID: uuid.New(), BusinessName: "Luma Photography", Category: "Photography", IsActive: true}

	f.vendors.On("Search", mock.Anything, repository.VendorFilter{
		Category: "Photography",
		Search:   "photo",
		Limit:    20,
	}).Return([]models.Vendor{luma}, int64(1), nil).Once()

	resp, err := f.vendorSvc.Search(context.Background(), &dto.VendorSearchQuery{Category: "photography", Search: " photo "})
	require.NoError(t, err)
	assert.Equal(t, []models.Vendor{luma}, resp.Vendors)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, 20, resp.Limit)
}

func TestSearch_ClampsLimitAndPassesPriceBounds(t *testing.T) {
	f := newFixture(t)
	f.vendors.On("Search", mock.Anything, repository.VendorFilter{
		MinPrice: ptr(500.0),
		MaxPrice: ptr(2000.0),
		Limit:    100,
		Offset:   40,
	}).Return([]models.Vendor{}, int64(0), nil).Once()

	resp, err := f.vendorSvc.Search(context.Background(), &dto.VendorSearchQuery{
		MinPrice: ptr(500.0),
		MaxPrice: ptr(2000.0),
		Limit:    1000,
		Offset:   40,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, resp.Limit)
	assert.Equal(t, 40, resp.Offset)
}

func TestSearch_RejectsInvertedPriceRange(t *testing.T) {
	f := newFixture(t)

	_, err := f.vendorSvc.Search(context.Background(), &dto.VendorSearchQuery{MinPrice: ptr(3000.0), MaxPrice: ptr(100.0)})
	assert.ErrorIs(t, err, ErrValidation)
	f.vendors.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearch_RejectsNegativeOffset(t *testing.T) {
	f := newFixture(t)

	_, err := f.vendorSvc.Search(context.Background(), &dto.VendorSearchQuery{Offset: -1})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "offset")
}

func TestVendorDetail_ReadThroughCache(t *testing.T) {
	f := newFixture(t)
	_, vendor := f.givenVendor()
	packages := []models.VendorPackage{{ID: uuid.New(), VendorID: vendor.ID, Name: "Half day", Price: 900, IsActive: true}}
	portfolio := []models.PortfolioItem{{ID: uuid.New(), VendorID: vendor.ID, ImageURL: "/objects/uploads/a"}}
	f.vendors.On("ListPackages", mock.Anything, vendor.ID, true).Return(packages, nil).Once()
	f.vendors.On("ListPortfolio", mock.Anything, vendor.ID).Return(portfolio, nil).Once()

	first, err := f.vendorSvc.GetVendorDetail(context.Background(), vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luma Photography", first.BusinessName)
	assert.Equal(t, packages, first.Packages)
	assert.Equal(t, portfolio, first.Portfolio)

	second, err := f.vendorSvc.GetVendorDetail(context.Background(), vendor.ID)
	require.NoError(t, err)
	assert.Same(t, first, second)
	f.vendors.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestVendorDetail_ReloadedAfterUpdate(t *testing.T) {
	f := newFixture(t)
	user, vendor := f.givenVendor()
	f.vendors.On("ListPackages", mock.Anything, vendor.ID, true).Return([]models.VendorPackage{}, nil).Twice()
	f.vendors.On("ListPortfolio", mock.Anything, vendor.ID).Return([]models.PortfolioItem{}, nil).Twice()
	f.vendors.On("Update", mock.Anything, vendor).Return(nil).Once()

	_, err := f.vendorSvc.GetVendorDetail(context.Background(), vendor.ID)
	require.NoError(t, err)

	_, err = f.vendorSvc.UpdateVendorProfile(context.Background(), user.ID, &dto.UpdateVendorRequest{
		BusinessName: ptr("Luma Studio"),
	})
	require.NoError(t, err)
	assert.Contains(t, f.cache.invalidated, vendor.ID)

	detail, err := f.vendorSvc.GetVendorDetail(context.Background(), vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luma Studio", detail.BusinessName)
	f.vendors.AssertNumberOfCalls(t, "GetByID", 2)
}

func TestVendorDetail_InactiveIsNotFound(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.vendors.On("GetByID", mock.Anything, id).Return(&models.Vendor{ID: id, BusinessName: "Old Studio", IsActive: false}, nil).Once()

	_, err := f.vendorSvc.GetVendorDetail(context.Background(), id)
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestUpdateVendorProfile_RecomputesLocation(t *testing.T) {
	f := newFixture(t)
	user, vendor := f.givenVendor()
	vendor.City, vendor.State, vendor.Country = "Austin", "TX", "USA"
	f.vendors.On("Update", mock.Anything, vendor).Return(nil).Once()

	updated, err := f.vendorSvc.UpdateVendorProfile(context.Background(), user.ID, &dto.UpdateVendorRequest{
		City:     ptr("Dallas"),
		Category: ptr("catering"),
		IsActive: ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dallas, TX, USA", updated.Location)
	assert.Equal(t, "Catering", updated.Category)
	assert.False(t, updated.IsActive)
}

func TestUpdateVendorProfile_UnknownCategory(t *testing.T) {
	f := newFixture(t)
	user, _ := f.givenVendor()

	_, err := f.vendorSvc.UpdateVendorProfile(context.Background(), user.ID, &dto.UpdateVendorRequest{Category: ptr("Astrology")})
	assert.ErrorIs(t, err, ErrValidation)
	f.vendors.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateVendorProfile_RequiresVendorProfile(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.profiles.On("VendorByUserID", mock.Anything, id).Return(nil, repository.ErrNotFound).Once()

	_, err := f.vendorSvc.UpdateVendorProfile(context.Background(), id, &dto.UpdateVendorRequest{})
	assert.ErrorIs(t, err, ErrVendorProfileRequired)
}

func TestPackages_CreateAndSoftDelete(t *testing.T) {
	f := newFixture(t)
	user, vendor := f.givenVendor()

	var created *models.VendorPackage
	f.vendors.On("CreatePackage", mock.Anything, mock.AnythingOfType("*models.VendorPackage")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*models.VendorPackage) }).
		Return(nil).Once()

	pkg, err := f.vendorSvc.CreatePackage(context.Background(), user.ID, &dto.PackageRequest{
		Name:     "Full day",
		Price:    ptr(2400.0),
		Features: []string{" 8 hours ", "", "Album"},
	})
	require.NoError(t, err)
	assert.Same(t, created, pkg)
	assert.Equal(t, vendor.ID, pkg.VendorID)
	assert.Equal(t, []string{"8 hours", "Album"}, []string(pkg.Features))
	assert.True(t, pkg.IsActive)

	f.vendors.On("GetPackage", mock.Anything, vendor.ID, pkg.ID).Return(pkg, nil).Once()
	f.vendors.On("UpdatePackage", mock.Anything, mock.MatchedBy(func(p *models.VendorPackage) bool {
		return p.ID == pkg.ID && !p.IsActive
	})).Return(nil).Once()

	require.NoError(t, f.vendorSvc.DeletePackage(context.Background(), user.ID, pkg.ID))
	assert.Len(t, f.cache.invalidated, 2)
}

func TestPackages_ForeignPackageIsNotFound(t *testing.T) {
	f := newFixture(t)
	user, vendor := f.givenVendor()
	other := uuid.New()
	f.vendors.On("GetPackage", mock.Anything, vendor.ID, other).Return(nil, repository.ErrNotFound).Once()

	_, err := f.vendorSvc.UpdatePackage(context.Background(), user.ID, other, &dto.UpdatePackageRequest{Name: ptr("Mine now")})
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestDeletePortfolioItem(t *testing.T) {
	f := newFixture(t)
	user, vendor := f.givenVendor()
	itemID := uuid.New()
	f.vendors.On("DeletePortfolioItem", mock.Anything, vendor.ID, itemID).Return(nil).Once()
	missing := uuid.New()
	f.vendors.On("DeletePortfolioItem", mock.Anything, vendor.ID, missing).Return(repository.ErrNotFound).Once()

	require.NoError(t, f.vendorSvc.DeletePortfolioItem(context.Background(), user.ID, itemID))
	assert.ErrorIs(t, f.vendorSvc.DeletePortfolioItem(context.Background(), user.ID, missing), ErrPortfolioItemNotFound)
}

func TestCategories(t *testing.T) {
	f := newFixture(t)
	names := make([]string, 0)
	for _, c := range f.vendorSvc.Categories() {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "Photography")
	assert.Contains(t, names, "Florist")
}
