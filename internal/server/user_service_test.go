package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jordan/career-compass/internal/config"
	"github.com/jordan/career-compass/internal/db"
	"github.com/jordan/career-compass/internal/types"
)

// fakeUserStore implements UserStore in memory.
type fakeUserStore struct {
	byID       map[uuid.UUID]*db.User
	byUsername map[string]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byID:       make(map[uuid.UUID]*db.User),
		byUsername: make(map[string]*db.User),
	}
}

func (s *fakeUserStore) CreateUser(_ context.Context, forename, familyName, username, passwordHash string) (uuid.UUID, error) {
	if _, exists := s.byUsername[username]; exists {
		return uuid.Nil, db.ErrDuplicateUsername
	}
	user := &db.User{
		ID:           uuid.New(),
		Forename:     forename,
		FamilyName:   familyName,
		Username:     username,
		PasswordHash: passwordHash,
	}
	s.byID[user.ID] = user
	s.byUsername[username] = user
	return user.ID, nil
}

func (s *fakeUserStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return s.byID[userID], nil
}

func (s *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*db.User, error) {
	return s.byUsername[username], nil
}

func testPasswordConfig() *config.PasswordConfig {
	// Minimum cost keeps the hashing in these tests fast.
	return &config.PasswordConfig{BcryptCost: bcrypt.MinCost}
}

func registerRequestFixture() *types.RegisterRequest {
	return &types.RegisterRequest{
		Forename:   "Ada",
		FamilyName: "Lovelace",
		Username:   "ada",
		Password:   "correct-horse-battery",
	}
}

func TestUserService_Register(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, testPasswordConfig())

	user, err := svc.Register(context.Background(), registerRequestFixture())
	require.NoError(t, err)

	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, "Ada", user.Forename)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// The stored hash is not the plaintext password.
	stored := store.byUsername["ada"]
	assert.NotEqual(t, "correct-horse-battery", stored.PasswordHash)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, testPasswordConfig())

	_, err := svc.Register(context.Background(), registerRequestFixture())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequestFixture())
	require.Error(t, err)
	var taken *ErrUsernameTaken
	assert.ErrorAs(t, err, &taken)
	assert.Equal(t, http.StatusConflict, HTTPStatus(err))
}

func TestUserService_Login(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, testPasswordConfig())

	registered, err := svc.Register(context.Background(), registerRequestFixture())
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), &types.LoginRequest{
		Username: "ada",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, testPasswordConfig())

	_, err := svc.Register(context.Background(), registerRequestFixture())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &types.LoginRequest{Username: "ada", Password: "wrong"})
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testPasswordConfig())

	_, err := svc.Login(context.Background(), &types.LoginRequest{Username: "nobody", Password: "whatever"})
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
	// Same error as a wrong password, so usernames cannot be enumerated.
	assert.Equal(t, "invalid username or password", err.Error())
}
