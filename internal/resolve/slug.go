// Package resolve turns AI-suggested courses (title + provider) into
// concrete, validated provider URLs with a matching platform image.
package resolve

import "strings"

// marketingSuffixes are generic trailing words that providers rarely keep
// in their URL slugs even when the model includes them in the title.
// Stripped in order, each at most once.
var marketingSuffixes = []string{
	"specialization",
	"course",
	"masterclass",
	"bootcamp",
	"training",
	"guide",
	"fundamentals",
}

// Slugify converts a free-text course title into a URL-path-safe slug:
// lowercased, whitespace collapsed to single hyphens, anything outside
// [a-z0-9_-] dropped, repeated hyphens collapsed, and trailing marketing
// suffixes removed. An empty result means "no viable slug" and callers
// must skip direct-pattern candidates.
func Slugify(title string) string {
	lower := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lower))
	lastHyphen := false
	for _, r := range lower {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_':
			b.WriteRune(r)
			lastHyphen = false
		case r == '-':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
		// Everything else (punctuation, symbols, non-ASCII) is dropped.
	}

	slug := strings.Trim(b.String(), "-")

	for _, suffix := range marketingSuffixes {
		slug = strings.TrimSuffix(slug, "-"+suffix)
	}

	return strings.Trim(slug, "-")
}
