package partials

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// formatPrice renders a catalog price with two decimals
func formatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// pluralize returns "1 product" / "3 products"
func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// sectionAnchor is the element id a category navigation button scrolls to
func sectionAnchor(id string) string {
	if id == "" {
		return ""
	}
	return "slider-" + id
}

// ProductCountLabel is shown next to a category in admin lists
func ProductCountLabel(n int) string {
	return pluralize(n, "product", "products")
}

// joinTags joins product filter tags for the data-tags attribute
func joinTags(tags []string) string {
	return strings.Join(tags, " ")
}
