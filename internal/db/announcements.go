package db

import (
	"context"
	"fmt"
)

// CreateAnnouncement inserts a new announcement and returns its ID.
func (db *DB) CreateAnnouncement(ctx context.Context, title, content string) (int, error) {
	var id int
	err := db.pool.QueryRow(ctx,
		`INSERT INTO announcements (title, content) VALUES ($1, $2) RETURNING id`,
		title, content,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create announcement: %w", err)
	}
	return id, nil
}

// ListAnnouncements retrieves all announcements, most recent first.
func (db *DB) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, content, created_at
		 FROM announcements
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []Announcement
	for rows.Next() {
		var a Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}
