package resolve

import (
	"context"
	"log"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jordan/career-compass/internal/fetch"
)

// Strategy attempts to find a live course page URL for a suggested course.
// Implementations return ok=false when they cannot produce a validated
// URL; the resolver then falls through to the next strategy.
type Strategy interface {
	Name() string
	Discover(ctx context.Context, title, provider string) (string, bool)
}

// PatternDiscovery builds slug-based candidate URLs from known provider
// path patterns and probes each one until a live page answers.
type PatternDiscovery struct {
	validator *Validator
	patterns  map[string][]string
	verbose   bool
}

// NewPatternDiscovery builds the primary discovery strategy.
func NewPatternDiscovery(validator *Validator, verbose bool) *PatternDiscovery {
	return &PatternDiscovery{
		validator: validator,
		patterns:  providerPatterns,
		verbose:   verbose,
	}
}

func (d *PatternDiscovery) Name() string { return "pattern" }

// Discover probes the provider's candidate URLs in table order and returns
// the first one that validates.
func (d *PatternDiscovery) Discover(ctx context.Context, title, provider string) (string, bool) {
	slug := Slugify(title)
	if slug == "" {
		return "", false
	}

	prefixes, ok := d.patterns[NormalizeProvider(provider)]
	if !ok {
		return "", false
	}

	for _, prefix := range prefixes {
		candidate := prefix + slug
		if err := ctx.Err(); err != nil {
			return "", false
		}
		if d.validator.Validate(ctx, candidate) {
			if d.verbose {
				log.Printf("[resolve] pattern hit: %s", candidate)
			}
			return candidate, true
		}
	}
	return "", false
}

// pathKeywords mark anchors that plausibly point at course detail pages.
var pathKeywords = []string{"course", "learn", "training", "tutorial", "classes", "specializations"}

// ScrapeDiscovery fetches the provider's search results page and extracts
// course links from the HTML. It is the secondary strategy: slower and
// more fragile than pattern probing, but able to find courses whose slugs
// do not follow the provider's usual scheme.
type ScrapeDiscovery struct {
	validator  *Validator
	searchURLs map[string]string
	useBrowser bool
	timeout    time.Duration
	verbose    bool
}

// NewScrapeDiscovery builds the scrape-based discovery strategy. When
// useBrowser is set, pages that come back as empty SPA shells are
// re-rendered in a headless browser before parsing.
func NewScrapeDiscovery(validator *Validator, useBrowser bool, timeout time.Duration, verbose bool) *ScrapeDiscovery {
	if timeout <= 0 {
		timeout = fetch.DefaultTimeout
	}
	return &ScrapeDiscovery{
		validator:  validator,
		searchURLs: searchPages,
		useBrowser: useBrowser,
		timeout:    timeout,
		verbose:    verbose,
	}
}

func (d *ScrapeDiscovery) Name() string { return "scrape" }

// Discover loads the provider's search page for the course title, extracts
// candidate course links, and returns the best-scoring one that validates.
func (d *ScrapeDiscovery) Discover(ctx context.Context, title, provider string) (string, bool) {
	page, ok := d.searchURLs[NormalizeProvider(provider)]
	if !ok {
		return "", false
	}
	searchURL := page + url.QueryEscape(title)

	result, err := fetch.URL(ctx, searchURL, &fetch.Options{
		Timeout:   d.timeout,
		UserAgent: fetch.DefaultUserAgent,
	})
	if err != nil {
		if d.verbose {
			log.Printf("[resolve] scrape fetch failed: %v", err)
		}
		return "", false
	}

	html := result.HTML
	if d.useBrowser && fetch.ShouldUseBrowser(html) {
		rendered, err := fetch.WithBrowser(ctx, searchURL, d.timeout, d.verbose)
		if err != nil {
			if d.verbose {
				log.Printf("[resolve] browser render failed: %v", err)
			}
		} else {
			html = rendered
		}
	}

	candidates := extractCourseLinks(html, searchURL, title)
	if d.verbose {
		log.Printf("[resolve] scrape found %d candidates for %q on %s", len(candidates), title, provider)
	}

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return "", false
		}
		if d.validator.Validate(ctx, candidate) {
			return candidate, true
		}
	}
	return "", false
}

// scoredLink is a candidate course URL with its title-overlap score.
type scoredLink struct {
	url   string
	score int
}

// extractCourseLinks parses search-result HTML and returns absolute course
// URLs ordered by how many title tokens appear in the link path. Only the
// top few are returned; validating every result would hammer the provider.
func extractCourseLinks(html, baseURL, title string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	tokens := strings.Split(Slugify(title), "-")

	seen := make(map[string]bool)
	var links []scoredLink
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil || ref.Path == "" {
			return
		}
		abs := base.ResolveReference(ref)
		abs.Fragment = ""
		abs.RawQuery = ""

		// Search pages carry sponsored and partner links to other sites;
		// only the provider's own pages are candidates.
		if !sameHost(abs.Host, base.Host) {
			return
		}

		lowerPath := strings.ToLower(abs.Path)
		if !hasPathKeyword(lowerPath) {
			return
		}
		// Search pages link back to themselves; skip anything that still
		// looks like a listing rather than a detail page.
		if hasListingSegment(lowerPath) {
			return
		}

		key := abs.String()
		if seen[key] {
			return
		}
		seen[key] = true

		score := 0
		for _, tok := range tokens {
			if tok != "" && strings.Contains(lowerPath, tok) {
				score++
			}
		}
		links = append(links, scoredLink{url: key, score: score})
	})

	sort.SliceStable(links, func(i, j int) bool { return links[i].score > links[j].score })

	const maxCandidates = 5
	out := make([]string, 0, maxCandidates)
	for _, l := range links {
		if l.score == 0 && len(out) > 0 {
			break
		}
		out = append(out, l.url)
		if len(out) == maxCandidates {
			break
		}
	}
	return out
}

func hasPathKeyword(path string) bool {
	for _, kw := range pathKeywords {
		if strings.Contains(path, kw) {
			return true
		}
	}
	return false
}

// sameHost compares hosts ignoring case and a leading www.; providers link
// to their course pages in both forms.
func sameHost(a, b string) bool {
	return trimHost(a) == trimHost(b)
}

func trimHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}

// hasListingSegment reports whether any path segment is a search or
// results listing. Whole segments only: a slug like /course/research-methods
// contains "search" as a substring but is a detail page.
func hasListingSegment(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if segment == "search" || segment == "results" {
			return true
		}
	}
	return false
}
