package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product publication statuses
const (
	ProductStatusPublish = "publish"
	ProductStatusDraft   = "draft"
)

// Product is a catalog item that sliders display
type Product struct {
	ID              int                 `gorm:"primarykey" json:"id"`
	Name            string              `gorm:"not null;index" json:"name"`
	SKU             string              `gorm:"index" json:"sku"`
	Slug            string              `gorm:"index" json:"slug"`
	CatalogCategory string              `gorm:"index" json:"catalog_category"` // Native catalog category slug
	RegularPrice    decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0" json:"regular_price"`
	SalePrice       decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"sale_price"`
	ImageURL        string              `json:"image_url"`
	Permalink       string              `json:"permalink"`
	Featured        bool                `gorm:"not null;default:false;index" json:"featured"`
	Status          string              `gorm:"not null;default:publish;index" json:"status"`
	CreatedAt       time.Time           `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// TableName specifies the table name for Product model
func (Product) TableName() string {
	return "products"
}

// IsOnSale reports whether a sale price below the regular price is set
func (p Product) IsOnSale() bool {
	return p.SalePrice.Valid && p.SalePrice.Decimal.LessThan(p.RegularPrice)
}

// ActivePrice is the price a shopper pays right now
func (p Product) ActivePrice() decimal.Decimal {
	if p.IsOnSale() {
		return p.SalePrice.Decimal
	}
	return p.RegularPrice
}

// DiscountPercent returns the rounded sale discount, 0 when not on sale
func (p Product) DiscountPercent() int64 {
	if !p.IsOnSale() || p.RegularPrice.IsZero() {
		return 0
	}
	off := p.RegularPrice.Sub(p.SalePrice.Decimal).Div(p.RegularPrice).Mul(decimal.NewFromInt(100))
	return off.Round(0).IntPart()
}

// IsNew reports whether the product was created within the last days
func (p Product) IsNew(now time.Time, days int) bool {
	if days <= 0 {
		return false
	}
	return now.Sub(p.CreatedAt) <= time.Duration(days)*24*time.Hour
}
