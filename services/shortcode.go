package services

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"product_slider_app_go/models"

	"go.uber.org/zap"
)

// ShortcodeTag is the embed directive name
const ShortcodeTag = "netflix_slider"

var (
	shortcodePattern = regexp.MustCompile(`\[` + ShortcodeTag + `((?:\s+[^\]]*)?)\]`)
	attributePattern = regexp.MustCompile(`([a-zA-Z_]+)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"']+))`)
)

// SliderAttributes are the options of one embedded slider
type SliderAttributes struct {
	Limit                int
	Columns              int
	Category             string // native catalog category slug
	CustomCategory       string // custom category id
	ShowCustomCategories bool
	Type                 string // recent, featured or sale
	ShowFilters          bool
	Title                string
	Description          string
}

// DefaultSliderAttributes returns the attribute defaults derived from settings
func DefaultSliderAttributes(settings models.SliderSettings) SliderAttributes {
	return SliderAttributes{
		Limit:       settings.ProductLimit,
		Columns:     settings.ProductsPerRow,
		Type:        ListingRecent,
		ShowFilters: true,
		Title:       "Featured Products",
	}
}

// ParseShortcodeAttributes reads `name="value"` pairs (single, double or no quotes) over defaults
func ParseShortcodeAttributes(raw string, defaults SliderAttributes) SliderAttributes {
	values := map[string]string{}
	for _, m := range attributePattern.FindAllStringSubmatch(raw, -1) {
		values[strings.ToLower(m[1])] = m[2] + m[3] + m[4]
	}
	return applyAttributes(values, defaults)
}

// SliderAttributesFromQuery reads attributes from URL query parameters over defaults
func SliderAttributesFromQuery(query url.Values, defaults SliderAttributes) SliderAttributes {
	values := map[string]string{}
	for key := range query {
		values[strings.ToLower(key)] = query.Get(key)
	}
	return applyAttributes(values, defaults)
}

func applyAttributes(values map[string]string, attrs SliderAttributes) SliderAttributes {
	if v, ok := values["limit"]; ok {
		attrs.Limit = boundedInt(v, 1, 100, attrs.Limit)
	}
	if v, ok := values["columns"]; ok {
		attrs.Columns = boundedInt(v, 1, 8, attrs.Columns)
	}
	if v, ok := values["category"]; ok {
		attrs.Category = Slugify(v)
	}
	if v, ok := values["custom_category"]; ok {
		attrs.CustomCategory = Slugify(v)
	}
	if v, ok := values["show_custom_categories"]; ok {
		attrs.ShowCustomCategories = ParseBool(v)
	}
	if v, ok := values["type"]; ok {
		if t := strings.ToLower(strings.TrimSpace(v)); IsValidListingType(t) {
			attrs.Type = t
		}
	}
	if v, ok := values["show_filters"]; ok {
		attrs.ShowFilters = ParseBool(v)
	}
	if v, ok := values["title"]; ok {
		attrs.Title = SanitizeText(v)
	}
	if v, ok := values["description"]; ok {
		attrs.Description = SanitizeText(v)
	}
	return attrs
}

// ParseBool accepts the usual truthy spellings of form and shortcode values
func ParseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func boundedInt(v string, min, max, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < min || n > max {
		return fallback
	}
	return n
}

// ContentSegment is either literal text or one embedded slider
type ContentSegment struct {
	Text   string
	Slider *SliderAttributes
}

// SplitContent cuts content into text and slider segments
func SplitContent(content string, defaults SliderAttributes) []ContentSegment {
	var segments []ContentSegment
	last := 0
	for _, loc := range shortcodePattern.FindAllStringSubmatchIndex(content, -1) {
		if loc[0] > last {
			segments = append(segments, ContentSegment{Text: content[last:loc[0]]})
		}
		attrs := ParseShortcodeAttributes(content[loc[2]:loc[3]], defaults)
		segments = append(segments, ContentSegment{Slider: &attrs})
		last = loc[1]
	}
	if last < len(content) {
		segments = append(segments, ContentSegment{Text: content[last:]})
	}
	return segments
}

// SliderSection is one horizontally scrolling strip
type SliderSection struct {
	Category    *models.CustomCategory // nil for catalog-driven strips
	Title       string
	Description string
	Products    []models.Product
}

// SliderView is everything needed to render one embedded slider
type SliderView struct {
	Attributes SliderAttributes
	Settings   models.SliderSettings
	Sections   []SliderSection
	Navigation []models.CustomCategory
	Now        time.Time
}

// SliderService resolves slider attributes into product strips
type SliderService struct {
	categories *CategoryStore
	catalog    *Catalog
	settings   *SettingsService
	log        *zap.Logger
	now        func() time.Time
}

// NewSliderService creates a new slider service
func NewSliderService(categories *CategoryStore, catalog *Catalog, settings *SettingsService, log *zap.Logger) *SliderService {
	return &SliderService{
		categories: categories,
		catalog:    catalog,
		settings:   settings,
		log:        log.Named("slider"),
		now:        time.Now,
	}
}

// Defaults returns the current settings and the attribute defaults derived from them
func (s *SliderService) Defaults(ctx context.Context) (models.SliderSettings, SliderAttributes, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return settings, DefaultSliderAttributes(settings), err
	}
	return settings, DefaultSliderAttributes(settings), nil
}

// Resolve loads the products for attrs.
// A single custom category wins over the custom category overview, which wins over a catalog listing.
func (s *SliderService) Resolve(ctx context.Context, attrs SliderAttributes) (*SliderView, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	view := &SliderView{Attributes: attrs, Settings: settings, Now: s.now()}

	switch {
	case attrs.CustomCategory != "":
		category, err := s.categories.Get(ctx, attrs.CustomCategory)
		if errors.Is(err, ErrCategoryNotFound) || (err == nil && !category.Visibility) {
			s.log.Debug("Custom category not rendered", zap.String("id", attrs.CustomCategory))
			return view, nil
		}
		if err != nil {
			return nil, err
		}
		section, err := s.categorySection(ctx, *category, attrs.Limit)
		if err != nil {
			return nil, err
		}
		view.Sections = append(view.Sections, section)

	case attrs.ShowCustomCategories:
		categories, err := s.categories.List(ctx, true)
		if err != nil {
			return nil, err
		}
		view.Navigation = categories
		for _, category := range categories {
			section, err := s.categorySection(ctx, category, attrs.Limit)
			if err != nil {
				return nil, err
			}
			view.Sections = append(view.Sections, section)
		}

	default:
		products, err := s.catalog.Listing(ctx, ListingQuery{
			Type:            attrs.Type,
			CatalogCategory: attrs.Category,
			Limit:           attrs.Limit,
		})
		if err != nil {
			s.log.Error("Catalog listing failed", zap.String("type", attrs.Type), zap.Error(err))
			return nil, err
		}
		view.Sections = append(view.Sections, SliderSection{
			Title:       attrs.Title,
			Description: attrs.Description,
			Products:    products,
		})
	}

	return view, nil
}

func (s *SliderService) categorySection(ctx context.Context, category models.CustomCategory, limit int) (SliderSection, error) {
	products, err := s.categories.ProductsByCategory(ctx, category.ID, limit)
	if err != nil {
		return SliderSection{}, err
	}
	return SliderSection{
		Category:    &category,
		Title:       category.Name,
		Description: category.Description,
		Products:    products,
	}, nil
}

// ProductTags returns the client-side filter tags of a product
func ProductTags(p models.Product, now time.Time, newBadgeDays int) []string {
	var tags []string
	if p.IsOnSale() {
		tags = append(tags, "sale")
	}
	if p.IsNew(now, newBadgeDays) {
		tags = append(tags, "new")
	}
	if p.Featured {
		tags = append(tags, "featured")
	}
	return tags
}
