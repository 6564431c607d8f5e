package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PairSeparator joins two entity slugs into a comparison identifier.
const PairSeparator = "-vs-"

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// StripAccents removes combining marks: "Bogotá" -> "Bogota".
func StripAccents(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return normalized
}

// Slugify produces a lowercase, accent-free, hyphen separated identifier. A standalone
// "vs" token is spelled out so a slug never contains PairSeparator.
func Slugify(name string) string {
	slug := strings.ToLower(StripAccents(strings.TrimSpace(name)))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	for strings.Contains(slug, PairSeparator) {
		slug = strings.ReplaceAll(slug, PairSeparator, "-versus-")
	}
	if strings.HasPrefix(slug, "vs-") {
		slug = "versus-" + strings.TrimPrefix(slug, "vs-")
	}
	if strings.HasSuffix(slug, "-vs") {
		slug = strings.TrimSuffix(slug, "-vs") + "-versus"
	}
	return slug
}
