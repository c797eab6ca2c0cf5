package db

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents a registered user
type User struct {
	ID           uuid.UUID `json:"id"`
	Forename     string    `json:"forename"`
	FamilyName   string    `json:"family_name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Question represents a questionnaire question
type Question struct {
	ID           int            `json:"id"`
	QuestionText string         `json:"question"`
	Options      []AnswerOption `json:"options,omitempty"`
}

// AnswerOption represents a selectable option for a question
type AnswerOption struct {
	ID         int    `json:"id"`
	QuestionID int    `json:"-"`
	OptionText string `json:"text"`
}

// UserAnswer represents a user's stored answer to one question.
// Answer is a JSONB string array to support multi-choice questions.
type UserAnswer struct {
	UserID     uuid.UUID   `json:"user_id"`
	QuestionID int         `json:"question_id"`
	Answer     StringArray `json:"answer"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Course represents a recommended or manually added course saved for a user
type Course struct {
	UserID      uuid.UUID `json:"user_id"`
	CourseTitle string    `json:"course_title"`
	Provider    string    `json:"provider"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary represents a generated career summary for a user
type Summary struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// Announcement represents a site-wide announcement
type Announcement struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}

	var source []byte
	switch v := src.(type) {
	case []byte:
		source = v
	case string:
		source = []byte(v)
	default:
		return errors.New("incompatible type for StringArray")
	}

	if len(source) == 0 {
		*a = []string{}
		return nil
	}

	// Answers written before multi-choice support are bare strings.
	if source[0] != '[' {
		var single string
		if err := json.Unmarshal(source, &single); err != nil {
			*a = []string{string(source)}
			return nil
		}
		*a = []string{single}
		return nil
	}

	return json.Unmarshal(source, (*[]string)(a))
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (interface{}, error) {
	if a == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(a))
}
