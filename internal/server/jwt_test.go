package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/career-compass/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-at-least-32-characters!!",
		ExpirationHours: 1,
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_EmptyToken(t *testing.T) {
	_, err := testJWTService().ValidateToken("")
	require.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	_, err := testJWTService().ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := testJWTService().GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "a-completely-different-secret-value!", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	// Sign an already-expired token with the same secret.
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-at-least-32-characters!!"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestJWTService_RejectsUnsignedAlg(t *testing.T) {
	claims := &Claims{UserID: uuid.New()}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = testJWTService().ValidateToken(signed)
	require.Error(t, err)
}
