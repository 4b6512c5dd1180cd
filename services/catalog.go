package services

import (
	"context"
	"fmt"
	"strings"

	"product_slider_app_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Search pagination bounds
const (
	DefaultSearchPageSize = 50
	MaxSearchPageSize     = 100
)

// Listing types accepted by the slider
const (
	ListingRecent   = "recent"
	ListingFeatured = "featured"
	ListingSale     = "sale"
)

// IsValidListingType reports whether t is a known slider listing type
func IsValidListingType(t string) bool {
	switch t {
	case ListingRecent, ListingFeatured, ListingSale:
		return true
	}
	return false
}

// ProductSearchResult is one page of product search results
type ProductSearchResult struct {
	Products []models.Product `json:"products"`
	HasMore  bool             `json:"has_more"`
	Total    int64            `json:"total"`
}

// ListingQuery selects products for a catalog-driven slider
type ListingQuery struct {
	Type            string // recent, featured or sale
	CatalogCategory string // optional native category slug
	Limit           int
}

// Catalog reads products from the storefront catalog
type Catalog struct {
	db *gorm.DB
}

// NewCatalog creates a new catalog instance
func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

func (c *Catalog) published(ctx context.Context) *gorm.DB {
	return c.db.WithContext(ctx).Model(&models.Product{}).Where("status = ?", models.ProductStatusPublish)
}

// Search matches published products by name or SKU substring.
// An empty term browses the most recent products instead. Pages are 1-based.
func (c *Catalog) Search(ctx context.Context, term string, page, pageSize int) (*ProductSearchResult, error) {
	term = strings.TrimSpace(term)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxSearchPageSize {
		pageSize = DefaultSearchPageSize
	}
	offset := (page - 1) * pageSize

	query := c.published(ctx)
	order := "created_at DESC, id DESC"
	if term != "" {
		pattern := "%" + escapeLike(term) + "%"
		query = query.Where("(name LIKE ? ESCAPE '\\' OR sku LIKE ? ESCAPE '\\')", pattern, pattern)
		order = "name ASC, id ASC"
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("product search count failed: %w", err)
	}

	var products []models.Product
	if err := query.Order(order).Offset(offset).Limit(pageSize).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("product search failed: %w", err)
	}

	return &ProductSearchResult{
		Products: products,
		HasMore:  len(products) == pageSize,
		Total:    total,
	}, nil
}

// ProductsByIDs returns the published products among ids, in the order of ids.
// Unknown or unpublished ids are skipped.
func (c *Catalog) ProductsByIDs(ctx context.Context, ids []int) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}

	var found []models.Product
	if err := c.published(ctx).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	byID := make(map[int]models.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	ordered := make([]models.Product, 0, len(found))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// Listing returns products for a catalog slider
func (c *Catalog) Listing(ctx context.Context, q ListingQuery) ([]models.Product, error) {
	if q.Limit <= 0 {
		q.Limit = models.DefaultSliderSettings().ProductLimit
	}
	query := c.published(ctx)
	if q.CatalogCategory != "" {
		query = query.Where("catalog_category = ?", q.CatalogCategory)
	}

	switch q.Type {
	case ListingFeatured:
		query = query.Where("featured = ?", true)
	case ListingSale:
		query = query.Where("sale_price IS NOT NULL AND sale_price < regular_price")
	}

	var products []models.Product
	if err := query.Order("created_at DESC, id DESC").Limit(q.Limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s products: %w", q.Type, err)
	}

	if q.Type == ListingSale {
		onSale := products[:0]
		for _, p := range products {
			if p.IsOnSale() {
				onSale = append(onSale, p)
			}
		}
		products = onSale
	}
	return products, nil
}

// CatalogCategories lists the distinct native category slugs of published products
func (c *Catalog) CatalogCategories(ctx context.Context) ([]string, error) {
	var slugs []string
	err := c.published(ctx).
		Where("catalog_category <> ''").
		Distinct().
		Order("catalog_category ASC").
		Pluck("catalog_category", &slugs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog categories: %w", err)
	}
	return slugs, nil
}

// Upsert inserts products or updates them by id
func (c *Catalog) Upsert(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	err := c.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&products).Error
	if err != nil {
		return fmt.Errorf("failed to upsert products: %w", err)
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
