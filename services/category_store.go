package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"product_slider_app_go/models"

	"go.uber.org/zap"
)

const (
	// CategoriesOptionName holds the JSON array of custom categories
	CategoriesOptionName = "netflix_slider_custom_categories"

	// unorderedPosition sorts categories without an order after every ordered one
	unorderedPosition = 999
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInvalidBulkAction = errors.New("invalid bulk action")
)

// ValidationResult reports whether a category may be saved
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// CategoryStore is the single source of truth for custom categories.
// The collection is read and rewritten as a whole on every mutation.
type CategoryStore struct {
	options *OptionStore
	catalog *Catalog
	log     *zap.Logger
}

// NewCategoryStore creates a new category store
func NewCategoryStore(options *OptionStore, catalog *Catalog, log *zap.Logger) *CategoryStore {
	return &CategoryStore{
		options: options,
		catalog: catalog,
		log:     log.Named("categories"),
	}
}

// List returns categories sorted by order, ties kept in storage order.
// With visibleOnly, hidden categories are dropped first.
func (s *CategoryStore) List(ctx context.Context, visibleOnly bool) ([]models.CustomCategory, error) {
	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]models.CustomCategory, 0, len(all))
	for _, c := range all {
		if visibleOnly && !c.Visibility {
			continue
		}
		categories = append(categories, c)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return sortPosition(categories[i]) < sortPosition(categories[j])
	})
	return categories, nil
}

// Get returns the category with id or ErrCategoryNotFound
func (s *CategoryStore) Get(ctx context.Context, id string) (*models.CustomCategory, error) {
	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrCategoryNotFound
}

// Save sanitizes the record and upserts it by id.
// An existing record is replaced at its storage position; a new one is appended.
func (s *CategoryStore) Save(ctx context.Context, category models.CustomCategory) (models.CustomCategory, error) {
	clean := SanitizeCategory(category)

	err := s.mutate(ctx, func(categories []models.CustomCategory) ([]models.CustomCategory, error) {
		for i := range categories {
			if categories[i].ID == clean.ID {
				categories[i] = clean
				return categories, nil
			}
		}
		return append(categories, clean), nil
	})
	if err != nil {
		s.log.Error("Failed to save category", zap.String("id", clean.ID), zap.Error(err))
		return models.CustomCategory{}, err
	}

	s.log.Info("Category saved", zap.String("id", clean.ID), zap.Int("products", len(clean.Products)))
	return clean, nil
}

// Delete removes the category. Order values of the remaining records are left untouched.
func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	err := s.mutate(ctx, func(categories []models.CustomCategory) ([]models.CustomCategory, error) {
		for i := range categories {
			if categories[i].ID == id {
				remaining := make([]models.CustomCategory, 0, len(categories)-1)
				remaining = append(remaining, categories[:i]...)
				return append(remaining, categories[i+1:]...), nil
			}
		}
		return nil, ErrCategoryNotFound
	})
	if err != nil {
		if !errors.Is(err, ErrCategoryNotFound) {
			s.log.Error("Failed to delete category", zap.String("id", id), zap.Error(err))
		}
		return err
	}

	s.log.Info("Category deleted", zap.String("id", id))
	return nil
}

// Reorder overwrites the order of every category named in assignments in one write.
// Unknown ids are ignored.
func (s *CategoryStore) Reorder(ctx context.Context, assignments []models.OrderAssignment) error {
	err := s.mutate(ctx, func(categories []models.CustomCategory) ([]models.CustomCategory, error) {
		for _, a := range assignments {
			for i := range categories {
				if categories[i].ID == a.ID {
					categories[i].Order = a.Order
					break
				}
			}
		}
		return categories, nil
	})
	if err != nil {
		s.log.Error("Failed to reorder categories", zap.Int("assignments", len(assignments)), zap.Error(err))
		return err
	}

	s.log.Info("Categories reordered", zap.Int("assignments", len(assignments)))
	return nil
}

// BulkAction enables, disables or deletes every category whose id is in ids.
// Returns the number of categories affected.
func (s *CategoryStore) BulkAction(ctx context.Context, action string, ids []string) (int, error) {
	switch action {
	case models.BulkActionEnable, models.BulkActionDisable, models.BulkActionDelete:
	default:
		return 0, ErrInvalidBulkAction
	}

	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	var affected int
	err := s.mutate(ctx, func(categories []models.CustomCategory) ([]models.CustomCategory, error) {
		affected = 0
		if action == models.BulkActionDelete {
			kept := make([]models.CustomCategory, 0, len(categories))
			for _, c := range categories {
				if selected[c.ID] {
					affected++
					continue
				}
				kept = append(kept, c)
			}
			return kept, nil
		}

		visible := action == models.BulkActionEnable
		for i := range categories {
			if selected[categories[i].ID] {
				categories[i].Visibility = visible
				affected++
			}
		}
		return categories, nil
	})
	if err != nil {
		s.log.Error("Bulk category action failed", zap.String("action", action), zap.Error(err))
		return 0, err
	}

	s.log.Info("Bulk category action applied", zap.String("action", action), zap.Int("affected", affected))
	return affected, nil
}

// SetVisibility shows or hides one category
func (s *CategoryStore) SetVisibility(ctx context.Context, id string, visible bool) error {
	err := s.mutate(ctx, func(categories []models.CustomCategory) ([]models.CustomCategory, error) {
		for i := range categories {
			if categories[i].ID == id {
				categories[i].Visibility = visible
				return categories, nil
			}
		}
		return nil, ErrCategoryNotFound
	})
	if err != nil && !errors.Is(err, ErrCategoryNotFound) {
		s.log.Error("Failed to toggle category visibility", zap.String("id", id), zap.Error(err))
	}
	return err
}

// Validate checks the sanitized form of category.
// The id collision check only runs when creating (editing is false).
func (s *CategoryStore) Validate(ctx context.Context, category models.CustomCategory, editing bool) (ValidationResult, error) {
	clean := SanitizeCategory(category)
	var problems []string

	if clean.Name == "" {
		problems = append(problems, "Category name is required.")
	}
	if clean.ID == "" {
		problems = append(problems, "Category ID is required.")
	}
	if !models.IsValidColorScheme(clean.ColorScheme) {
		problems = append(problems, "Invalid color scheme selected.")
	}
	if clean.Order < 1 {
		problems = append(problems, "Order must be a positive number.")
	}

	if !editing && clean.ID != "" {
		_, err := s.Get(ctx, clean.ID)
		switch {
		case err == nil:
			problems = append(problems, "A category with this ID already exists.")
		case !errors.Is(err, ErrCategoryNotFound):
			return ValidationResult{}, err
		}
	}

	return ValidationResult{Valid: len(problems) == 0, Errors: problems}, nil
}

// SearchProducts searches the catalog for the product picker
func (s *CategoryStore) SearchProducts(ctx context.Context, term string, page, pageSize int) (*ProductSearchResult, error) {
	result, err := s.catalog.Search(ctx, term, page, pageSize)
	if err != nil {
		s.log.Error("Product search failed", zap.String("term", term), zap.Int("page", page), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// ProductsByCategory returns up to limit published products of a category in slider order.
// Products that no longer exist in the catalog are skipped.
func (s *CategoryStore) ProductsByCategory(ctx context.Context, id string, limit int) ([]models.Product, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	products, err := s.catalog.ProductsByIDs(ctx, category.Products)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

// SanitizeCategory coerces every field to its declared shape.
// A missing id is generated from the name.
func SanitizeCategory(c models.CustomCategory) models.CustomCategory {
	clean := models.CustomCategory{
		ID:          Slugify(SanitizeText(c.ID)),
		Name:        SanitizeText(c.Name),
		Description: SanitizeTextarea(c.Description),
		ColorScheme: SanitizeText(c.ColorScheme),
		Icon:        StripTags(c.Icon),
		Order:       c.Order,
		Products:    make([]int, 0, len(c.Products)),
		Visibility:  c.Visibility,
	}
	if clean.ID == "" {
		clean.ID = Slugify(clean.Name)
	}
	for _, id := range c.Products {
		if id > 0 {
			clean.Products = append(clean.Products, id)
		}
	}
	return clean
}

func sortPosition(c models.CustomCategory) int {
	if c.Order == 0 {
		return unorderedPosition
	}
	return c.Order
}

func (s *CategoryStore) load(ctx context.Context) ([]models.CustomCategory, error) {
	var categories []models.CustomCategory
	err := s.options.Get(ctx, CategoriesOptionName, &categories)
	if errors.Is(err, ErrOptionNotFound) {
		return []models.CustomCategory{}, nil
	}
	if err != nil {
		s.log.Error("Failed to load categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

// mutate applies fn to a fresh copy of the collection and writes the result back.
// fn may run more than once when a concurrent write forces a retry.
func (s *CategoryStore) mutate(ctx context.Context, fn func([]models.CustomCategory) ([]models.CustomCategory, error)) error {
	return s.options.Update(ctx, CategoriesOptionName, func(current []byte) ([]byte, error) {
		categories := []models.CustomCategory{}
		if len(current) > 0 {
			if err := json.Unmarshal(current, &categories); err != nil {
				return nil, fmt.Errorf("failed to decode categories: %w", err)
			}
		}

		next, err := fn(categories)
		if err != nil {
			return nil, err
		}
		if next == nil {
			next = []models.CustomCategory{}
		}
		return json.Marshal(next)
	})
}
