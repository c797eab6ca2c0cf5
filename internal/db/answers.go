package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// Answer Methods
// -----------------------------------------------------------------------------

// SaveAnswer upserts a user's answer to one question.
func (db *DB) SaveAnswer(ctx context.Context, userID uuid.UUID, questionID int, answer StringArray) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO user_answers (user_id, question_id, answer)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, question_id) DO UPDATE SET answer = EXCLUDED.answer, created_at = NOW()`,
		userID, questionID, answer,
	)
	if err != nil {
		return fmt.Errorf("failed to save answer for question %d: %w", questionID, err)
	}
	return nil
}

// ListAnsweredQuestions retrieves a user's answers joined with question text,
// in question order. Questions without an answer are omitted.
func (db *DB) ListAnsweredQuestions(ctx context.Context, userID uuid.UUID) ([]AnsweredQuestionRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT q.id, q.question_text, ua.answer
		 FROM user_answers ua
		 JOIN questions q ON ua.question_id = q.id
		 WHERE ua.user_id = $1
		 ORDER BY q.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	defer rows.Close()

	var answered []AnsweredQuestionRow
	for rows.Next() {
		var a AnsweredQuestionRow
		if err := rows.Scan(&a.QuestionID, &a.QuestionText, &a.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		answered = append(answered, a)
	}
	return answered, rows.Err()
}

// AnsweredQuestionRow is one row of the answers/questions join.
type AnsweredQuestionRow struct {
	QuestionID   int
	QuestionText string
	Answer       StringArray
}
