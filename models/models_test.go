package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductPricing(t *testing.T) {
	p := Product{RegularPrice: decimal.RequireFromString("40.00")}
	assert.False(t, p.IsOnSale())
	assert.True(t, p.ActivePrice().Equal(decimal.RequireFromString("40")))
	assert.Equal(t, int64(0), p.DiscountPercent())

	p.SalePrice = decimal.NewNullDecimal(decimal.RequireFromString("30.00"))
	assert.True(t, p.IsOnSale())
	assert.True(t, p.ActivePrice().Equal(decimal.RequireFromString("30")))
	assert.Equal(t, int64(25), p.DiscountPercent())

	// A "sale" price above the regular price is not a sale
	p.SalePrice = decimal.NewNullDecimal(decimal.RequireFromString("45.00"))
	assert.False(t, p.IsOnSale())
}

func TestProductIsNew(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := Product{CreatedAt: now.Add(-5 * 24 * time.Hour)}

	assert.True(t, p.IsNew(now, 30))
	assert.False(t, p.IsNew(now, 3))
	assert.False(t, p.IsNew(now, 0))
}

func TestUserCapabilities(t *testing.T) {
	admin := &User{Role: RoleAdministrator, IsActive: true}
	manager := &User{Role: RoleShopManager, IsActive: true}
	customer := &User{Role: RoleCustomer, IsActive: true}
	inactive := &User{Role: RoleAdministrator, IsActive: false}

	assert.True(t, admin.Can(CapabilityManageOptions))
	assert.True(t, manager.Can(CapabilityManageStore))
	assert.False(t, manager.Can(CapabilityManageOptions))
	assert.False(t, customer.Can(CapabilityManageStore))
	assert.False(t, inactive.Can(CapabilityManageStore))

	var nobody *User
	assert.False(t, nobody.Can(CapabilityManageStore))
}

func TestColorSchemes(t *testing.T) {
	for _, scheme := range ColorSchemes {
		assert.True(t, IsValidColorScheme(scheme))
	}
	assert.False(t, IsValidColorScheme("teal"))
	assert.Equal(t, ColorSchemeGradient(ColorSchemePink), ColorSchemeGradient("teal"))
	assert.Contains(t, CustomCategory{ColorScheme: ColorSchemeBlue}.Gradient(), "#4facfe")
}
