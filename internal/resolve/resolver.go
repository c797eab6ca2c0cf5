package resolve

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jordan/career-compass/internal/types"
)

// Resolver runs discovery strategies in order for each suggested course and
// falls back to the provider's search page when none of them produce a
// validated URL. Resolution is total: every suggestion comes back with a
// non-empty URL and image.
type Resolver struct {
	strategies  []Strategy
	timeout     time.Duration
	concurrency int
	verbose     bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTimeout sets the per-course resolution budget.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithConcurrency caps how many courses resolve in parallel.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithVerbose enables progress logging.
func WithVerbose(v bool) Option {
	return func(r *Resolver) { r.verbose = v }
}

// NewResolver builds a Resolver over the given strategies, tried in order.
func NewResolver(strategies []Strategy, opts ...Option) *Resolver {
	r := &Resolver{
		strategies:  strategies,
		timeout:     30 * time.Second,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve finds a URL for a single suggestion. Strategies run in order
// within the per-course budget; if all fail (or the budget expires) the
// provider search page is used. The returned course always has a URL and
// an image.
func (r *Resolver) Resolve(ctx context.Context, suggestion types.CourseSuggestion) types.ResolvedCourse {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resolvedURL := ""
	for _, s := range r.strategies {
		if ctx.Err() != nil {
			break
		}
		if u, ok := s.Discover(ctx, suggestion.CourseTitle, suggestion.Provider); ok {
			if r.verbose {
				log.Printf("[resolve] %q resolved via %s: %s", suggestion.CourseTitle, s.Name(), u)
			}
			resolvedURL = u
			break
		}
	}

	if resolvedURL == "" {
		resolvedURL = SearchFallback(suggestion.Provider, suggestion.CourseTitle)
		// Always logged: a course that could not be confirmed (or named an
		// unknown provider) is a data-quality signal, not just debug noise.
		log.Printf("[resolve] no validated URL for %q (%s); falling back to %s",
			suggestion.CourseTitle, suggestion.Provider, resolvedURL)
	}

	return types.ResolvedCourse{
		CourseTitle: suggestion.CourseTitle,
		Provider:    suggestion.Provider,
		URL:         resolvedURL,
		Image:       PlaceholderImage(resolvedURL),
	}
}

// ResolveAll resolves every suggestion concurrently and returns results in
// input order. Individual failures never surface as errors; a course that
// cannot be resolved gets its search fallback.
func (r *Resolver) ResolveAll(ctx context.Context, suggestions []types.CourseSuggestion) []types.ResolvedCourse {
	resolved := make([]types.ResolvedCourse, len(suggestions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, suggestion := range suggestions {
		g.Go(func() error {
			resolved[i] = r.Resolve(gctx, suggestion)
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	return resolved
}
