package resolve

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidator_LivePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/learn/machine-learning" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	v := NewValidator(2*time.Second, false)
	assert.True(t, v.Validate(context.Background(), server.URL+"/learn/machine-learning"))
	assert.False(t, v.Validate(context.Background(), server.URL+"/learn/unknown-course"))
}

func TestValidator_TrailingSlashAndCase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	v := NewValidator(2*time.Second, false)
	// The probe path and the served path differ only by trailing slash; the
	// server does not redirect, so requested and final paths are identical
	// and the comparison is against itself. Both forms must pass.
	assert.True(t, v.Validate(context.Background(), server.URL+"/course/go/"))
	assert.True(t, v.Validate(context.Background(), server.URL+"/course/GO"))
}

func TestValidator_RedirectToSamePath(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/course/go", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+"/course/go/", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/course/go/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	v := NewValidator(2*time.Second, false)
	assert.True(t, v.Validate(context.Background(), server.URL+"/course/go"))
}

func TestValidator_RedirectAway(t *testing.T) {
	// Providers answer dead slugs with a redirect to the homepage plus a
	// 200; the same-path check is what rejects those.
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/course/dead-course", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+"/", http.StatusFound)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	v := NewValidator(2*time.Second, false)
	assert.False(t, v.Validate(context.Background(), server.URL+"/course/dead-course"))
}

func TestValidator_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	v := NewValidator(2*time.Second, false)
	assert.False(t, v.Validate(context.Background(), server.URL+"/course/go"))
}

func TestValidator_TransportFailure(t *testing.T) {
	v := NewValidator(500*time.Millisecond, false)
	// Unreachable host: false, never a panic or error.
	assert.False(t, v.Validate(context.Background(), "http://127.0.0.1:1/course/go"))
	assert.False(t, v.Validate(context.Background(), "not a url"))
	assert.False(t, v.Validate(context.Background(), ""))
}

func TestValidator_TooManyRedirects(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, r.URL.Path+"x", http.StatusFound)
	})

	v := NewValidator(2*time.Second, false)
	assert.False(t, v.Validate(context.Background(), server.URL+"/course/go"))
}

func TestValidator_SamePathRedirectLoop(t *testing.T) {
	// Cookie gates bounce the exact same path forever. The final response
	// after the redirect allowance is a 3xx whose path matches the request,
	// which must still count as invalid.
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/course/go", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+"/course/go", http.StatusFound)
	})

	v := NewValidator(2*time.Second, false)
	assert.False(t, v.Validate(context.Background(), server.URL+"/course/go"))
}

func TestSamePath(t *testing.T) {
	assert.True(t, samePath("/learn/go", "/learn/go/"))
	assert.True(t, samePath("/Learn/Go", "/learn/go"))
	assert.True(t, samePath("", "/"))
	assert.False(t, samePath("/learn/go", "/"))
	assert.False(t, samePath("/learn/go", "/learn/golang"))
}
