package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jordan/career-compass/internal/config"
	"github.com/jordan/career-compass/internal/db"
	"github.com/jordan/career-compass/internal/types"
)

// UserStore is the persistence surface the user service needs. *db.DB
// satisfies it; tests substitute a fake.
type UserStore interface {
	CreateUser(ctx context.Context, forename, familyName, username, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByUsername(ctx context.Context, username string) (*db.User, error)
}

// UserService provides business logic for user authentication operations.
type UserService struct {
	store          UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// toAPIUser converts db.User to types.User, excluding the password hash.
func toAPIUser(dbUser *db.User) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:         dbUser.ID,
		Forename:   dbUser.Forename,
		FamilyName: dbUser.FamilyName,
		Username:   dbUser.Username,
		CreatedAt:  dbUser.CreatedAt,
	}
}

// Register creates a new user with password authentication.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.store.CreateUser(ctx, req.Forename, req.FamilyName, req.Username, passwordHash)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateUsername) {
			return nil, &ErrUsernameTaken{Username: req.Username}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	dbUser, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if dbUser == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	return toAPIUser(dbUser), nil
}

// Login authenticates a user and returns user data.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	// Same generic error whether the user is missing or the password is
	// wrong, so login probes cannot enumerate usernames.
	if dbUser == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return toAPIUser(dbUser), nil
}
