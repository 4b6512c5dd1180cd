package models

// Color schemes available to custom categories
const (
	ColorSchemePink   = "pink"
	ColorSchemeBlue   = "blue"
	ColorSchemeGreen  = "green"
	ColorSchemePurple = "purple"
	ColorSchemeOrange = "orange"
)

// ColorSchemes lists the allowed schemes in display order
var ColorSchemes = []string{
	ColorSchemePink,
	ColorSchemeBlue,
	ColorSchemeGreen,
	ColorSchemePurple,
	ColorSchemeOrange,
}

var colorSchemeGradients = map[string]string{
	ColorSchemePink:   "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
	ColorSchemeBlue:   "linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)",
	ColorSchemeGreen:  "linear-gradient(135deg, #43e97b 0%, #38f9d7 100%)",
	ColorSchemePurple: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
	ColorSchemeOrange: "linear-gradient(135deg, #fa709a 0%, #fee140 100%)",
}

// IsValidColorScheme reports whether scheme is one of ColorSchemes
func IsValidColorScheme(scheme string) bool {
	_, ok := colorSchemeGradients[scheme]
	return ok
}

// ColorSchemeGradient returns the CSS gradient for a scheme, falling back to pink
func ColorSchemeGradient(scheme string) string {
	if g, ok := colorSchemeGradients[scheme]; ok {
		return g
	}
	return colorSchemeGradients[ColorSchemePink]
}

// Bulk actions accepted by the category store
const (
	BulkActionEnable  = "enable"
	BulkActionDisable = "disable"
	BulkActionDelete  = "delete"
)

// CustomCategory is an admin-curated grouping of catalog products shown as one slider.
// The whole collection is persisted as a single JSON option.
type CustomCategory struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	ColorScheme string `json:"color_scheme" yaml:"color_scheme"`
	Icon        string `json:"icon" yaml:"icon"`
	Order       int    `json:"order" yaml:"order"`
	Products    []int  `json:"products" yaml:"products"`
	Visibility  bool   `json:"visibility" yaml:"visibility"`
}

// Gradient returns the CSS background for the category's color scheme
func (c CustomCategory) Gradient() string {
	return ColorSchemeGradient(c.ColorScheme)
}

// OrderAssignment sets the display order of one category
type OrderAssignment struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}
