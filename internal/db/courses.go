package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// Course Methods
// -----------------------------------------------------------------------------

// SaveCourse upserts a single course for a user, keyed by (user_id, course_title).
func (db *DB) SaveCourse(ctx context.Context, course *Course) error {
	provider := course.Provider
	if provider == "" {
		provider = "Unknown"
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO user_courses (user_id, course_title, provider, link, image_url)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, course_title)
		 DO UPDATE SET provider = EXCLUDED.provider, link = EXCLUDED.link, image_url = EXCLUDED.image_url`,
		course.UserID, course.CourseTitle, provider, course.URL, course.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("failed to save course %q: %w", course.CourseTitle, err)
	}
	return nil
}

// SaveCourses upserts a batch of courses for a user inside one transaction,
// so a recommendation batch lands atomically.
func (db *DB) SaveCourses(ctx context.Context, userID uuid.UUID, courses []Course) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, course := range courses {
		provider := course.Provider
		if provider == "" {
			provider = "Unknown"
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO user_courses (user_id, course_title, provider, link, image_url)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (user_id, course_title)
			 DO UPDATE SET provider = EXCLUDED.provider, link = EXCLUDED.link, image_url = EXCLUDED.image_url`,
			userID, course.CourseTitle, provider, course.URL, course.ImageURL,
		)
		if err != nil {
			return fmt.Errorf("failed to save course %q: %w", course.CourseTitle, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit courses: %w", err)
	}
	return nil
}

// ListCourses retrieves a user's saved courses, most recent first.
func (db *DB) ListCourses(ctx context.Context, userID uuid.UUID) ([]Course, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT user_id, course_title, provider, link, image_url, created_at
		 FROM user_courses
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	var courses []Course
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.UserID, &c.CourseTitle, &c.Provider, &c.URL, &c.ImageURL, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// DeleteCoursesForUser removes all saved courses for a user.
func (db *DB) DeleteCoursesForUser(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM user_courses WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete courses: %w", err)
	}
	return nil
}
