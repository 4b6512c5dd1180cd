package services

import (
	"context"
	"errors"
	"regexp"

	"product_slider_app_go/models"
)

// SettingsOptionName holds the slider display settings
const SettingsOptionName = "netflix_slider_settings"

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// SettingsService reads and writes slider settings
type SettingsService struct {
	options *OptionStore
}

// NewSettingsService creates a new settings service
func NewSettingsService(options *OptionStore) *SettingsService {
	return &SettingsService{options: options}
}

// Get returns the saved settings layered over the defaults
func (s *SettingsService) Get(ctx context.Context) (models.SliderSettings, error) {
	settings := models.DefaultSliderSettings()
	err := s.options.Get(ctx, SettingsOptionName, &settings)
	if err != nil && !errors.Is(err, ErrOptionNotFound) {
		return models.DefaultSliderSettings(), err
	}
	return settings, nil
}

// Save validates and stores settings. Validation problems are returned without writing.
func (s *SettingsService) Save(ctx context.Context, settings models.SliderSettings) ([]string, error) {
	settings.HomeContent = SanitizeTextarea(settings.HomeContent)
	if problems := ValidateSettings(settings); len(problems) > 0 {
		return problems, nil
	}
	return nil, s.options.Set(ctx, SettingsOptionName, settings)
}

// ValidateSettings returns a human readable message for each invalid field
func ValidateSettings(settings models.SliderSettings) []string {
	var problems []string
	if settings.ProductsPerRow < 1 || settings.ProductsPerRow > 8 {
		problems = append(problems, "Products per row must be between 1 and 8.")
	}
	if settings.ProductLimit < 1 || settings.ProductLimit > 100 {
		problems = append(problems, "Product limit must be between 1 and 100.")
	}
	if !hexColorPattern.MatchString(settings.AccentColor) {
		problems = append(problems, "Accent color must be a hex color like #e50914.")
	}
	if settings.NewBadgeDays < 1 || settings.NewBadgeDays > 365 {
		problems = append(problems, "New badge days must be between 1 and 365.")
	}
	return problems
}
