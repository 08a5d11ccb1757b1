package scaffold

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	oerrors "github.com/opmodel/cptgen/internal/errors"
)

// dashiconPrefix matches "dashicon-" and "dashicons-".
var dashiconPrefix = regexp.MustCompile(`dashicon(-|s-)`)

// labelSeparators are replaced by spaces when deriving a label.
var labelSeparators = strings.NewReplacer("_", " ", "-", " ")

// ValidateSlug rejects slugs WordPress cannot use as a post type key or
// that would name the plugins directory itself.
func ValidateSlug(slug string) error {
	if slug == "" {
		return oerrors.NewValidationError("The slug cannot be empty.", "slug", "")
	}

	if len(slug) > MaxSlugLength {
		return oerrors.NewValidationError(
			"Post type slugs cannot exceed 20 characters in length.",
			"slug",
			fmt.Sprintf("%q is %d characters long.", slug, len(slug)),
		)
	}

	if slug == "." || slug == ".." {
		return oerrors.NewValidationError(
			"Invalid plugin slug specified. The slug cannot be '.' or '..'.",
			"slug",
			"",
		)
	}

	return nil
}

// DefaultLabel derives the label from a slug: lower-cased, with
// underscores and hyphens turned into spaces.
func DefaultLabel(slug string) string {
	return labelSeparators.Replace(strings.ToLower(slug))
}

// MachineName converts a slug into a PHP-identifier-safe name.
func MachineName(slug string) string {
	return strings.ReplaceAll(slug, "-", "_")
}

// ExtractDashicon strips the dashicon prefix. Empty input stays empty.
func ExtractDashicon(dashicon string) string {
	if dashicon == "" {
		return ""
	}
	return dashiconPrefix.ReplaceAllString(dashicon, "")
}

// Ucfirst upper-cases the first character of s.
func Ucfirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Ucwords upper-cases the first character of every whitespace-separated word.
func Ucwords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	atStart := true
	for _, r := range s {
		if atStart {
			r = unicode.ToUpper(r)
		}
		atStart = unicode.IsSpace(r)
		b.WriteRune(r)
	}
	return b.String()
}

// DefaultPluginName derives the plugin header name from a slug,
// e.g. "sample-cpt" becomes "Sample Cpt CPT WP CLI".
func DefaultPluginName(slug string) string {
	return Ucwords(strings.ReplaceAll(slug, "-", " ")) + pluginNameSuffix
}
