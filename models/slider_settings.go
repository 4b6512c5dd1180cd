package models

// SliderSettings are the storefront display options edited on the settings page
type SliderSettings struct {
	ProductsPerRow int    `json:"products_per_row"`
	ProductLimit   int    `json:"product_limit"`
	ShowArrows     bool   `json:"show_arrows"`
	EnableSwipe    bool   `json:"enable_swipe"`
	Autoplay       bool   `json:"autoplay"`
	AccentColor    string `json:"accent_color"`
	NewBadgeDays   int    `json:"new_badge_days"`
	HomeContent    string `json:"home_content"`
}

// DefaultSliderSettings returns the settings used before anything is saved
func DefaultSliderSettings() SliderSettings {
	return SliderSettings{
		ProductsPerRow: 4,
		ProductLimit:   12,
		ShowArrows:     true,
		EnableSwipe:    true,
		Autoplay:       false,
		AccentColor:    "#e50914",
		NewBadgeDays:   30,
		HomeContent:    `[netflix_slider show_custom_categories="true"]`,
	}
}
