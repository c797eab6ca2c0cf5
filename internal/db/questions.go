package db

import (
	"context"
	"fmt"
)

// -----------------------------------------------------------------------------
// Question Methods
// -----------------------------------------------------------------------------

// CreateQuestion inserts a new question and returns its ID.
func (db *DB) CreateQuestion(ctx context.Context, questionText string) (int, error) {
	var id int
	err := db.pool.QueryRow(ctx,
		`INSERT INTO questions (question_text) VALUES ($1) RETURNING id`,
		questionText,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create question: %w", err)
	}
	return id, nil
}

// AddQuestionOptions inserts selectable options for a question.
func (db *DB) AddQuestionOptions(ctx context.Context, questionID int, options []string) error {
	for _, optionText := range options {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO answer_options (question_id, option_text) VALUES ($1, $2)`,
			questionID, optionText,
		)
		if err != nil {
			return fmt.Errorf("failed to add option for question %d: %w", questionID, err)
		}
	}
	return nil
}

// ListQuestions retrieves all questions with their options, in ID order.
func (db *DB) ListQuestions(ctx context.Context) ([]Question, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, question_text FROM questions ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.QuestionText); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}

	for i := range questions {
		options, err := db.listOptions(ctx, questions[i].ID)
		if err != nil {
			return nil, err
		}
		questions[i].Options = options
	}
	return questions, nil
}

// listOptions retrieves the options for one question.
func (db *DB) listOptions(ctx context.Context, questionID int) ([]AnswerOption, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, question_id, option_text FROM answer_options WHERE question_id = $1 ORDER BY id`,
		questionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list options for question %d: %w", questionID, err)
	}
	defer rows.Close()

	var options []AnswerOption
	for rows.Next() {
		var o AnswerOption
		if err := rows.Scan(&o.ID, &o.QuestionID, &o.OptionText); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

// DeleteQuestion deletes a question; options and answers cascade.
// Returns false when the question does not exist.
func (db *DB) DeleteQuestion(ctx context.Context, questionID int) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM questions WHERE id = $1`,
		questionID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete question: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
