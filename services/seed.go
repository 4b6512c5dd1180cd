package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"product_slider_app_go/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// CategorySeed is the YAML layout of a category seed file
type CategorySeed struct {
	Categories []models.CustomCategory `yaml:"categories"`
}

// ProductSeed is the YAML layout of a catalog seed file.
// Prices are strings so they survive YAML as exact decimals.
type ProductSeed struct {
	Products []ProductSeedEntry `yaml:"products"`
}

// ProductSeedEntry is one product of a catalog seed file
type ProductSeedEntry struct {
	ID              int    `yaml:"id"`
	Name            string `yaml:"name"`
	SKU             string `yaml:"sku"`
	CatalogCategory string `yaml:"category"`
	RegularPrice    string `yaml:"regular_price"`
	SalePrice       string `yaml:"sale_price"`
	ImageURL        string `yaml:"image_url"`
	Featured        bool   `yaml:"featured"`
	Status          string `yaml:"status"`
	CreatedAt       string `yaml:"created_at"` // YYYY-MM-DD or RFC 3339, defaults to now
}

// LoadCategorySeed decodes a category seed file
func LoadCategorySeed(r io.Reader) ([]models.CustomCategory, error) {
	var seed CategorySeed
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil {
		return nil, fmt.Errorf("failed to decode category seed: %w", err)
	}
	return seed.Categories, nil
}

// SeedCategories validates and upserts categories, returning the per-record problems.
// Existing ids are updated in place.
func SeedCategories(ctx context.Context, store *CategoryStore, categories []models.CustomCategory) (*ImportResult, error) {
	result := &ImportResult{Errors: []string{}}
	for _, category := range categories {
		result.TotalProcessed++

		clean := SanitizeCategory(category)
		_, err := store.Get(ctx, clean.ID)
		validation, vErr := store.Validate(ctx, clean, err == nil)
		if vErr != nil {
			return nil, vErr
		}
		if !validation.Valid {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", displayID(clean), strings.Join(validation.Errors, " ")))
			continue
		}
		if _, err := store.Save(ctx, clean); err != nil {
			return nil, err
		}
		result.SuccessCount++
	}
	return result, nil
}

// LoadProductSeed decodes a catalog seed file into products
func LoadProductSeed(r io.Reader, now time.Time) ([]models.Product, error) {
	var seed ProductSeed
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil {
		return nil, fmt.Errorf("failed to decode product seed: %w", err)
	}

	products := make([]models.Product, 0, len(seed.Products))
	for i, entry := range seed.Products {
		product, err := entry.toProduct(now)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", i+1, err)
		}
		products = append(products, product)
	}
	return products, nil
}

func (e ProductSeedEntry) toProduct(now time.Time) (models.Product, error) {
	if e.ID <= 0 {
		return models.Product{}, fmt.Errorf("id must be positive")
	}
	name := SanitizeText(e.Name)
	if name == "" {
		return models.Product{}, fmt.Errorf("name is required")
	}

	regular, err := decimal.NewFromString(strings.TrimSpace(e.RegularPrice))
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid regular_price %q: %w", e.RegularPrice, err)
	}

	var sale decimal.NullDecimal
	if strings.TrimSpace(e.SalePrice) != "" {
		d, err := decimal.NewFromString(strings.TrimSpace(e.SalePrice))
		if err != nil {
			return models.Product{}, fmt.Errorf("invalid sale_price %q: %w", e.SalePrice, err)
		}
		sale = decimal.NewNullDecimal(d)
	}

	createdAt := now
	if e.CreatedAt != "" {
		createdAt, err = ParseDate(e.CreatedAt)
		if err != nil {
			return models.Product{}, fmt.Errorf("invalid created_at %q: %w", e.CreatedAt, err)
		}
	}

	status := e.Status
	if status == "" {
		status = models.ProductStatusPublish
	}
	slug := Slugify(name)

	return models.Product{
		ID:              e.ID,
		Name:            name,
		SKU:             strings.TrimSpace(e.SKU),
		Slug:            slug,
		CatalogCategory: Slugify(e.CatalogCategory),
		RegularPrice:    regular,
		SalePrice:       sale,
		ImageURL:        strings.TrimSpace(e.ImageURL),
		Permalink:       "/product/" + slug,
		Featured:        e.Featured,
		Status:          status,
		CreatedAt:       createdAt,
	}, nil
}

// SeedAdminFromEnv creates an administrator from environment variables.
// Only runs if ADMIN_EMAIL and ADMIN_PASSWORD are set and the email is not registered yet.
func SeedAdminFromEnv(ctx context.Context, auth *AuthService, log *zap.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")

	// Skip if env vars not set
	if email == "" || password == "" {
		return nil
	}

	if name == "" {
		name = "Administrator"
	}

	_, err := auth.CreateUser(ctx, name, email, password, models.RoleAdministrator)
	if errors.Is(err, ErrEmailTaken) {
		log.Debug("Admin user already exists, skipping seed", zap.String("email", email))
		return nil
	}
	if err != nil {
		return err
	}

	log.Info("Admin user created from environment", zap.String("email", email))
	return nil
}
