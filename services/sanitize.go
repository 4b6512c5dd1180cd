package services

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripPolicy removes every HTML element, keeping only text
var stripPolicy = bluemonday.StrictPolicy()

// StripTags removes HTML tags and returns plain (unescaped) text
func StripTags(s string) string {
	return html.UnescapeString(stripPolicy.Sanitize(s))
}

// SanitizeText strips tags, collapses all whitespace (including line breaks) and trims
func SanitizeText(s string) string {
	return strings.Join(strings.Fields(StripTags(s)), " ")
}

// SanitizeTextarea strips tags and trims, keeping line breaks
func SanitizeTextarea(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(StripTags(s))
}

// Slugify turns text into a URL-safe identifier: accents folded, lowercase,
// runs of anything other than letters, digits or underscore collapsed to a single hyphen.
func Slugify(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
