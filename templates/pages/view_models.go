package pages

import (
	"product_slider_app_go/models"
	"product_slider_app_go/services"
	"product_slider_app_go/templates/components"
	"product_slider_app_go/templates/layouts"
)

// Category list layouts
const (
	CategoryViewList = "list"
	CategoryViewGrid = "grid"
)

// LoginPage holds data for the login form
type LoginPage struct {
	CSRFToken string
	Email     string
	Error     string
}

// SettingsPage holds data for the slider settings form
type SettingsPage struct {
	layouts.AdminPage
	Settings models.SliderSettings
	Errors   []string
	Saved    bool
}

// CategoryRow is one category with the products it resolves to
type CategoryRow struct {
	Category     models.CustomCategory
	ProductCount int
}

// CategoriesPage holds data for the custom category overview
type CategoriesPage struct {
	layouts.AdminPage
	Rows  []CategoryRow
	View  string // list or grid
	Flash components.FlashMessage
}

// CategoryFormPage holds data for the create/edit form
type CategoryFormPage struct {
	layouts.AdminPage
	Category models.CustomCategory
	Editing  bool
	Errors   []string
	Selected []models.Product
}

// HomePage is the storefront landing page
type HomePage struct {
	Settings models.SliderSettings
	Segments []HomeSegment
}

// HomeSegment is literal text or a resolved slider
type HomeSegment struct {
	Text   string
	Slider *services.SliderView
}

// NewCategoryRows pairs categories with their stored product counts
func NewCategoryRows(categories []models.CustomCategory) []CategoryRow {
	rows := make([]CategoryRow, len(categories))
	for i, c := range categories {
		rows[i] = CategoryRow{Category: c, ProductCount: len(c.Products)}
	}
	return rows
}
