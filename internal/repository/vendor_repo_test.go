package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=wed dbname=wed sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func searchSQL(t *testing.T, f VendorFilter) (string, []any) {
	t.Helper()
	repo := NewVendorRepo(dryRunDB(t))
	var vendors []models.Vendor
	stmt := repo.filtered(context.Background(), f).Find(&vendors).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestVendorSearch_AlwaysFiltersActive(t *testing.T) {
	sql, vars := searchSQL(t, VendorFilter{})

	assert.Contains(t, sql, "vendors.is_active = $1")
	assert.NotContains(t, sql, "EXISTS")
	require.Len(t, vars, 1)
	assert.Equal(t, true, vars[0])
}

func TestVendorSearch_TextFilters(t *testing.T) {
	sql, vars := searchSQL(t, VendorFilter{
		Category: "Photography",
		Location: "austin",
		Search:   "50%_off",
	})

	assert.Contains(t, sql, "vendors.category = $2")
	assert.Contains(t, sql, "vendors.location ILIKE $3")
	assert.Contains(t, sql, "(vendors.business_name ILIKE $4 OR vendors.description ILIKE $5)")
	assert.Equal(t, []any{true, "Photography", "%austin%", `%50\%\_off%`, `%50\%\_off%`}, vars)
}

func TestVendorSearch_PriceRangeUsesActivePackages(t *testing.T) {
	minPrice, maxPrice := 500.0, 2000.0
	sql, vars := searchSQL(t, VendorFilter{MinPrice: &minPrice, MaxPrice: &maxPrice})

	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM")
	assert.Contains(t, sql, "vendor_packages.vendor_id = vendors.id")
	assert.Contains(t, sql, "vendor_packages.is_active = $2")
	assert.Contains(t, sql, "vendor_packages.price >= $3")
	assert.Contains(t, sql, "vendor_packages.price <= $4")
	assert.Equal(t, []any{true, true, minPrice, maxPrice}, vars)
}

func TestVendorSearch_MinPriceOnly(t *testing.T) {
	minPrice := 100.0
	sql, _ := searchSQL(t, VendorFilter{MinPrice: &minPrice})

	assert.Contains(t, sql, "vendor_packages.price >=")
	assert.NotContains(t, sql, "vendor_packages.price <=")
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)), ErrDuplicate)

	other := errors.New("connection reset")
	assert.Equal(t, other, translate(other))
}
