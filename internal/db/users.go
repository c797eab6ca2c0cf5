package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateUsername is returned when registering an already-taken username.
var ErrDuplicateUsername = errors.New("username already registered")

// CreateUser inserts a new user and returns its ID.
// A unique-constraint violation on username maps to ErrDuplicateUsername.
func (db *DB) CreateUser(ctx context.Context, forename, familyName, username, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (forename, family_name, username, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		forename, familyName, username, passwordHash,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return uuid.Nil, ErrDuplicateUsername
		}
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUser retrieves a user by ID. Returns nil when not found.
func (db *DB) GetUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	var u User
	err := db.pool.QueryRow(ctx,
		`SELECT id, forename, family_name, username, password_hash, created_at
		 FROM users WHERE id = $1`,
		userID,
	).Scan(&u.ID, &u.Forename, &u.FamilyName, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// GetUserByUsername retrieves a user by username. Returns nil when not found.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := db.pool.QueryRow(ctx,
		`SELECT id, forename, family_name, username, password_hash, created_at
		 FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Forename, &u.FamilyName, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &u, nil
}
