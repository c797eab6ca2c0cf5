package resolve

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/career-compass/internal/types"
)

// stubStrategy resolves titles present in its table and fails everything else.
type stubStrategy struct {
	name  string
	urls  map[string]string
	calls atomic.Int32
	delay time.Duration
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Discover(ctx context.Context, title, _ string) (string, bool) {
	s.calls.Add(1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", false
		}
	}
	u, ok := s.urls[title]
	return u, ok
}

func TestResolver_FirstStrategyWins(t *testing.T) {
	primary := &stubStrategy{name: "primary", urls: map[string]string{
		"Go Basics": "https://www.udemy.com/course/go-basics",
	}}
	secondary := &stubStrategy{name: "secondary", urls: map[string]string{
		"Go Basics": "https://www.udemy.com/course/other",
	}}
	r := NewResolver([]Strategy{primary, secondary})

	course := r.Resolve(context.Background(), types.CourseSuggestion{CourseTitle: "Go Basics", Provider: "Udemy"})

	assert.Equal(t, "https://www.udemy.com/course/go-basics", course.URL)
	assert.Contains(t, course.Image, "brandfetch")
	assert.Equal(t, int32(0), secondary.calls.Load())
}

func TestResolver_FallsThroughStrategies(t *testing.T) {
	primary := &stubStrategy{name: "primary", urls: map[string]string{}}
	secondary := &stubStrategy{name: "secondary", urls: map[string]string{
		"Go Basics": "https://www.udemy.com/course/go-basics",
	}}
	r := NewResolver([]Strategy{primary, secondary})

	course := r.Resolve(context.Background(), types.CourseSuggestion{CourseTitle: "Go Basics", Provider: "Udemy"})

	assert.Equal(t, "https://www.udemy.com/course/go-basics", course.URL)
	assert.Equal(t, int32(1), primary.calls.Load())
}

func TestResolver_SearchFallback(t *testing.T) {
	r := NewResolver([]Strategy{&stubStrategy{name: "none", urls: map[string]string{}}})

	course := r.Resolve(context.Background(), types.CourseSuggestion{CourseTitle: "Go Basics", Provider: "Coursera"})

	assert.Equal(t, "https://www.coursera.org/search?query=Go+Basics", course.URL)
	assert.Contains(t, course.Image, "brandfetch")
}

func TestResolver_NoStrategies(t *testing.T) {
	// Even with no strategies wired, resolution stays total.
	r := NewResolver(nil)

	course := r.Resolve(context.Background(), types.CourseSuggestion{CourseTitle: "Go Basics", Provider: "Unknown Provider"})

	assert.Equal(t, DefaultPlaceholderURL, course.URL)
	assert.Equal(t, DefaultPlaceholderURL, course.Image)
}

func TestResolver_FallbackWarnsWithoutVerbose(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	r := NewResolver(nil)
	course := r.Resolve(context.Background(), types.CourseSuggestion{CourseTitle: "Go Basics", Provider: "Unknown Provider"})

	assert.Equal(t, DefaultPlaceholderURL, course.URL)
	// The data-quality warning fires even with verbose off.
	assert.Contains(t, buf.String(), "falling back")
	assert.Contains(t, buf.String(), "Go Basics")
}

func TestResolver_TimeoutFallsBack(t *testing.T) {
	slow := &stubStrategy{
		name:  "slow",
		delay: 500 * time.Millisecond,
		urls:  map[string]string{"Go Basics": "https://www.udemy.com/course/go-basics"},
	}
	r := NewResolver([]Strategy{slow}, WithTimeout(50*time.Millisecond))

	course := r.Resolve(context.Background(), types.CourseSuggestion{CourseTitle: "Go Basics", Provider: "Udemy"})

	assert.True(t, strings.HasPrefix(course.URL, "https://www.udemy.com/courses/search/"), course.URL)
}

func TestResolveAll_PreservesOrder(t *testing.T) {
	strategy := &stubStrategy{name: "stub", urls: map[string]string{
		"A": "https://www.udemy.com/course/a",
		"C": "https://www.coursera.org/learn/c",
	}}
	r := NewResolver([]Strategy{strategy}, WithConcurrency(2))

	suggestions := []types.CourseSuggestion{
		{CourseTitle: "A", Provider: "Udemy"},
		{CourseTitle: "B", Provider: "edX"},
		{CourseTitle: "C", Provider: "Coursera"},
	}
	resolved := r.ResolveAll(context.Background(), suggestions)

	require.Len(t, resolved, 3)
	assert.Equal(t, "https://www.udemy.com/course/a", resolved[0].URL)
	// B has no discovered URL; it gets the edX search page.
	assert.True(t, strings.HasPrefix(resolved[1].URL, "https://www.edx.org/search"), resolved[1].URL)
	assert.Equal(t, "https://www.coursera.org/learn/c", resolved[2].URL)
	for _, c := range resolved {
		assert.NotEmpty(t, c.URL)
		assert.NotEmpty(t, c.Image)
	}
}

func TestResolveAll_Empty(t *testing.T) {
	r := NewResolver(nil)
	assert.Empty(t, r.ResolveAll(context.Background(), nil))
}
