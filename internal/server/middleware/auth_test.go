package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClaims struct {
	userID uuid.UUID
}

func (c *fakeClaims) GetUserID() uuid.UUID { return c.userID }

type fakeValidator struct {
	userID uuid.UUID
	err    error
}

func (v *fakeValidator) ValidateToken(_ string) (UserIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &fakeClaims{userID: v.userID}, nil
}

func TestAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	var got uuid.UUID

	handler := Auth(&fakeValidator{userID: userID})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserID(r)
		require.NoError(t, err)
		got = id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, got)
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	handler := Auth(&fakeValidator{userID: uuid.New()})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	handler := Auth(&fakeValidator{})(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest("GET", "/profile", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_BadHeaderShapes(t *testing.T) {
	for _, header := range []string{"some-token", "Basic dXNlcjpwYXNz", "Bearer", "Bearer a b"} {
		handler := Auth(&fakeValidator{})(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			t.Fatalf("handler should not be called for header %q", header)
		}))

		req := httptest.NewRequest("GET", "/profile", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	handler := Auth(&fakeValidator{err: errors.New("expired")})(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserID_NotSet(t *testing.T) {
	req := httptest.NewRequest("GET", "/profile", nil)
	_, err := GetUserID(req)
	require.Error(t, err)
}
