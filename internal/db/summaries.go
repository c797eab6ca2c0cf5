package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveSummary stores a generated career summary for a user.
func (db *DB) SaveSummary(ctx context.Context, userID uuid.UUID, summary string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO summaries (user_id, summary) VALUES ($1, $2) RETURNING id`,
		userID, summary,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save summary: %w", err)
	}
	return id, nil
}

// GetLatestSummary retrieves the most recent summary for a user.
// Returns nil when the user has none.
func (db *DB) GetLatestSummary(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	var s Summary
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, summary, created_at
		 FROM summaries
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		userID,
	).Scan(&s.ID, &s.UserID, &s.Summary, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	return &s, nil
}
