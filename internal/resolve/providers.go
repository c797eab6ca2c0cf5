package resolve

import (
	"net/url"
	"strings"
)

// providerPatterns maps a normalized provider name to the URL prefixes its
// direct course pages use, most common first. The validator short-circuits
// on the first hit, so order is significant.
var providerPatterns = map[string][]string{
	"coursera": {
		"https://www.coursera.org/learn/",
		"https://www.coursera.org/specializations/",
		"https://www.coursera.org/professional-certificates/",
	},
	"udemy": {
		"https://www.udemy.com/course/",
	},
	"edx": {
		"https://www.edx.org/course/",
		"https://www.edx.org/professional-certificate/",
		"https://www.edx.org/learn/",
	},
	"linkedin learning": {
		"https://www.linkedin.com/learning/",
	},
	"skillshare": {
		"https://www.skillshare.com/en/classes/",
	},
	"futurelearn": {
		"https://www.futurelearn.com/courses/",
		"https://www.futurelearn.com/degrees/",
	},
}

// searchPages maps a normalized provider name to its search page with the
// query parameter left open. Every provider that can appear in a
// recommendation has an entry here even when it has no direct patterns.
var searchPages = map[string]string{
	"coursera":          "https://www.coursera.org/search?query=",
	"udemy":             "https://www.udemy.com/courses/search/?q=",
	"edx":               "https://www.edx.org/search?q=",
	"linkedin learning": "https://www.linkedin.com/learning/search?keywords=",
	"skillshare":        "https://www.skillshare.com/search?query=",
	"futurelearn":       "https://www.futurelearn.com/search?q=",
	"youtube":           "https://www.youtube.com/results?search_query=",
}

// platformPlaceholder pairs a domain substring with the provider's logo.
// Ordered: the first substring match wins.
type platformPlaceholder struct {
	Domain string
	Image  string
}

var platformPlaceholders = []platformPlaceholder{
	{"udemy.com", "https://cdn.brandfetch.io/idTqV2BNgX/theme/dark/logo.svg?c=1dxbfHSJFAPEGdCLU4o5B"},
	{"coursera.org", "https://cdn.brandfetch.io/idTHfL51P-/theme/dark/logo.svg?c=1dxbfHSJFAPEGdCLU4o5B"},
	{"edx.org", "https://cdn.brandfetch.io/idSP67A-c2/theme/dark/logo.svg?c=1dxbfHSJFAPEGdCLU4o5B"},
	{"linkedin.com", "https://cdn.brandfetch.io/idJFz6sAsl/theme/dark/logo.svg?c=1dxbfHSJFAPEGdCLU4o5B"},
	{"skillshare.com", "https://cdn.brandfetch.io/idPmqWnmuh/theme/dark/logo.svg?c=1dxbfHSJFAPEGdCLU4o5B"},
	{"futurelearn.com", "https://cdn.brandfetch.io/idEhEPzARD/theme/dark/logo.svg?c=1dxbfHSJFAPEGdCLU4o5B"},
	{"youtube.com", "https://cdn.brandfetch.io/idVfYwcuQz/theme/dark/logo.svg?c=1dxbfHSJFAPEGdCLU4o5B"},
}

// DefaultPlaceholderURL is both the fallback image and the terminal URL
// fallback for providers with no search page.
const DefaultPlaceholderURL = "https://via.placeholder.com/150"

// NormalizeProvider maps a free-text provider name to a table key.
func NormalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

// BuildCandidates produces plausible direct-course URLs for a provider, in
// table order. An unknown provider or an empty slug yields no candidates.
func BuildCandidates(provider, slug string) []string {
	if slug == "" {
		return nil
	}
	patterns, ok := providerPatterns[NormalizeProvider(provider)]
	if !ok {
		return nil
	}
	candidates := make([]string, 0, len(patterns))
	for _, prefix := range patterns {
		candidates = append(candidates, prefix+slug)
	}
	return candidates
}

// SearchFallback returns the provider's search page pre-filled with the
// course title, or the generic placeholder URL for unknown providers.
// It never returns an empty string.
func SearchFallback(provider, title string) string {
	page, ok := searchPages[NormalizeProvider(provider)]
	if !ok {
		return DefaultPlaceholderURL
	}
	return page + url.QueryEscape(title)
}

// PlaceholderImage returns the platform logo whose domain appears in the
// resolved URL, or the default placeholder. It never returns an empty string.
func PlaceholderImage(resolvedURL string) string {
	lower := strings.ToLower(resolvedURL)
	for _, p := range platformPlaceholders {
		if strings.Contains(lower, p.Domain) {
			return p.Image
		}
	}
	return DefaultPlaceholderURL
}
