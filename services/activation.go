package services

import (
	"context"
	"errors"
	"fmt"

	"product_slider_app_go/models"

	"go.uber.org/zap"
)

const (
	// PluginVersion is recorded on activation for upgrade detection
	PluginVersion = "2.1.0"
	// VersionOptionName holds the last activated version
	VersionOptionName = "netflix_slider_version"
)

// Activator prepares the options the storefront needs
type Activator struct {
	options *OptionStore
	log     *zap.Logger
}

// NewActivator creates a new activator
func NewActivator(options *OptionStore, log *zap.Logger) *Activator {
	return &Activator{options: options, log: log.Named("activation")}
}

// Activate creates missing options with their defaults and records the current version.
// Default categories are only seeded when the category option has never existed.
func (a *Activator) Activate(ctx context.Context, seedDefaults bool) error {
	var initial []models.CustomCategory
	if seedDefaults {
		initial = DefaultCategories()
	} else {
		initial = []models.CustomCategory{}
	}

	created, err := a.options.Add(ctx, CategoriesOptionName, initial)
	if err != nil {
		return fmt.Errorf("failed to create categories option: %w", err)
	}
	if created {
		a.log.Info("Categories option created", zap.Int("seeded", len(initial)))
	}

	if _, err := a.options.Add(ctx, SettingsOptionName, models.DefaultSliderSettings()); err != nil {
		return fmt.Errorf("failed to create settings option: %w", err)
	}

	var previous string
	err = a.options.Get(ctx, VersionOptionName, &previous)
	if err != nil && !errors.Is(err, ErrOptionNotFound) {
		return err
	}
	if previous != PluginVersion {
		if err := a.options.Set(ctx, VersionOptionName, PluginVersion); err != nil {
			return fmt.Errorf("failed to record version: %w", err)
		}
		a.log.Info("Version recorded", zap.String("previous", previous), zap.String("current", PluginVersion))
	}
	return nil
}

// Reset removes every stored category
func (a *Activator) Reset(ctx context.Context) error {
	if err := a.options.Delete(ctx, CategoriesOptionName); err != nil {
		return err
	}
	a.log.Warn("Categories option removed")
	return nil
}

// DefaultCategories are seeded on first activation
func DefaultCategories() []models.CustomCategory {
	return []models.CustomCategory{
		{
			ID:          "bestsellers",
			Name:        "Best Sellers",
			Description: "Our most popular products",
			ColorScheme: models.ColorSchemePink,
			Icon:        "🔥",
			Order:       1,
			Products:    []int{},
			Visibility:  true,
		},
		{
			ID:          "new-arrivals",
			Name:        "New Arrivals",
			Description: "Fresh picks just added to the store",
			ColorScheme: models.ColorSchemeBlue,
			Icon:        "✨",
			Order:       2,
			Products:    []int{},
			Visibility:  true,
		},
		{
			ID:          "on-sale",
			Name:        "On Sale",
			Description: "Limited time deals",
			ColorScheme: models.ColorSchemeOrange,
			Icon:        "🏷️",
			Order:       3,
			Products:    []int{},
			Visibility:  true,
		},
	}
}
