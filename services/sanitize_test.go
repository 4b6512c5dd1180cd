package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Best Sellers":        "best-sellers",
		"  New   Arrivals!! ": "new-arrivals",
		"Café Crème":          "cafe-creme",
		"on_sale":             "on_sale",
		"Summer -- 2026":      "summer-2026",
		"already-a-slug":      "already-a-slug",
		"!!!":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Best Sellers", SanitizeText("  <strong>Best</strong>\n\tSellers  "))
	assert.Equal(t, "Tom & Jerry", SanitizeText("Tom & Jerry"))
	assert.Equal(t, "", SanitizeText("<script>alert(1)</script>"))
}

func TestSanitizeTextarea(t *testing.T) {
	assert.Equal(t, "Line one\nLine two", SanitizeTextarea("  <p>Line one</p>\r\nLine two \n"))
}

func TestStripTagsKeepsEmoji(t *testing.T) {
	assert.Equal(t, "🔥", StripTags("<span>🔥</span>"))
}
