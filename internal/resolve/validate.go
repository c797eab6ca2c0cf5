package resolve

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jordan/career-compass/internal/fetch"
)

// maxRedirects mirrors a browser's patience: providers bounce through at
// most a couple of locale/tracking hops before the canonical page.
const maxRedirects = 5

// Validator checks whether a candidate URL is a live course page.
// A candidate passes only when the final response status is 200-399 AND
// the final path still matches the requested one; providers answer 200
// for dead slugs by redirecting to their home or search page, and the
// path comparison is what catches that.
type Validator struct {
	client  *http.Client
	verbose bool
}

// NewValidator builds a Validator with the given per-request timeout.
func NewValidator(timeout time.Duration, verbose bool) *Validator {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Validator{
		client: &http.Client{
			Timeout: timeout,
			// Exhausting the redirect allowance fails the probe outright;
			// handing back the last 3xx would let a redirect loop that
			// bounces the same path pass the status and path checks.
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		verbose: verbose,
	}
}

// Validate reports whether candidateURL resolves to a live page at the
// same path. All transport failures (DNS, timeout, TLS) mean "not valid",
// never an error: a failed probe just moves resolution to the next
// candidate.
func (v *Validator) Validate(ctx context.Context, candidateURL string) bool {
	requested, err := url.Parse(candidateURL)
	if err != nil || requested.Scheme == "" || requested.Host == "" {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, candidateURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", fetch.DefaultUserAgent)

	resp, err := v.client.Do(req)
	if err != nil {
		if v.verbose && !errors.Is(err, context.Canceled) {
			log.Printf("[resolve] probe failed for %s: %v", candidateURL, err)
		}
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		if v.verbose {
			log.Printf("[resolve] probe %s -> status %d", candidateURL, resp.StatusCode)
		}
		return false
	}

	finalPath := resp.Request.URL.Path
	if !samePath(requested.Path, finalPath) {
		if v.verbose {
			log.Printf("[resolve] probe %s redirected away to %s", candidateURL, resp.Request.URL)
		}
		return false
	}

	return true
}

// samePath compares two URL paths ignoring case and a trailing slash.
func samePath(a, b string) bool {
	return strings.EqualFold(normalizePath(a), normalizePath(b))
}

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	if p != "/" {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}
