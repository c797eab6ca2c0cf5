package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/jordan/career-compass/internal/db"
	"github.com/jordan/career-compass/internal/llm"
	"github.com/jordan/career-compass/internal/schemas"
	"github.com/jordan/career-compass/internal/types"
)

var (
	// ErrUserNotFound means the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrNoAnswers means the user has not completed the questionnaire.
	ErrNoAnswers = errors.New("no questionnaire answers")
	// ErrUnavailable means the model could not produce usable
	// recommendations. The batch fails as a whole; nothing is persisted.
	ErrUnavailable = errors.New("recommendations unavailable")
)

// Store is the persistence surface the pipeline needs. *db.DB satisfies it.
type Store interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	ListAnsweredQuestions(ctx context.Context, userID uuid.UUID) ([]db.AnsweredQuestionRow, error)
	SaveSummary(ctx context.Context, userID uuid.UUID, summary string) (uuid.UUID, error)
	DeleteCoursesForUser(ctx context.Context, userID uuid.UUID) error
	SaveCourses(ctx context.Context, userID uuid.UUID, courses []db.Course) error
}

// CourseResolver turns model suggestions into validated course URLs.
type CourseResolver interface {
	ResolveAll(ctx context.Context, suggestions []types.CourseSuggestion) []types.ResolvedCourse
}

// Pipeline runs one recommendation batch end to end for a user.
type Pipeline struct {
	store    Store
	llm      llm.Client
	resolver CourseResolver
	verbose  bool
}

// NewPipeline wires the recommendation pipeline.
func NewPipeline(store Store, client llm.Client, resolver CourseResolver, verbose bool) *Pipeline {
	return &Pipeline{
		store:    store,
		llm:      client,
		resolver: resolver,
		verbose:  verbose,
	}
}

// Run generates, resolves, and persists recommendations for a user. The
// saved course set is replaced wholesale, so re-running re-resolves and
// re-upserts. Model and parse failures return ErrUnavailable-wrapped
// errors with nothing persisted.
func (p *Pipeline) Run(ctx context.Context, userID uuid.UUID) (*types.RecommendationResult, error) {
	profile, err := p.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	prompt, err := BuildPrompt(profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if p.verbose {
		log.Printf("[recommend] requesting recommendations for user %s (%d answers)", userID, len(profile.Questions))
	}

	raw, err := p.llm.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("%w: model call failed: %v", ErrUnavailable, err)
	}

	recommendation, err := parseRecommendation(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if p.verbose {
		log.Printf("[recommend] model suggested %d courses", len(recommendation.RecommendedCourses))
	}

	resolved := p.resolver.ResolveAll(ctx, recommendation.RecommendedCourses)

	if err := p.persist(ctx, userID, recommendation.Summary, resolved); err != nil {
		return nil, err
	}

	return &types.RecommendationResult{
		Summary:            recommendation.Summary,
		RecommendedCourses: resolved,
	}, nil
}

func (p *Pipeline) loadProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error) {
	user, err := p.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	rows, err := p.store.ListAnsweredQuestions(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoAnswers
	}

	questions := make([]types.AnsweredQuestion, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, types.AnsweredQuestion{
			ID:       row.QuestionID,
			Question: row.QuestionText,
			Answer:   row.Answer,
		})
	}

	return &types.UserProfile{
		User: &types.User{
			ID:         user.ID,
			Forename:   user.Forename,
			FamilyName: user.FamilyName,
			Username:   user.Username,
			CreatedAt:  user.CreatedAt,
		},
		Questions: questions,
	}, nil
}

// parseRecommendation extracts the first JSON object from the model output,
// checks it against the recommendation schema, and decodes it.
func parseRecommendation(raw string) (*types.Recommendation, error) {
	document, err := llm.ExtractJSONObject(raw)
	if err != nil {
		return nil, fmt.Errorf("model output contained no JSON object: %v", err)
	}

	if err := schemas.ValidateRecommendation([]byte(document)); err != nil {
		return nil, fmt.Errorf("model output failed schema validation: %v", err)
	}

	var recommendation types.Recommendation
	if err := json.Unmarshal([]byte(document), &recommendation); err != nil {
		return nil, fmt.Errorf("failed to decode recommendation: %v", err)
	}
	return &recommendation, nil
}

// persist replaces the user's saved course set and appends the new summary.
func (p *Pipeline) persist(ctx context.Context, userID uuid.UUID, summary string, resolved []types.ResolvedCourse) error {
	if _, err := p.store.SaveSummary(ctx, userID, summary); err != nil {
		return err
	}

	if err := p.store.DeleteCoursesForUser(ctx, userID); err != nil {
		return err
	}

	courses := make([]db.Course, 0, len(resolved))
	for _, c := range resolved {
		courses = append(courses, db.Course{
			UserID:      userID,
			CourseTitle: c.CourseTitle,
			Provider:    c.Provider,
			URL:         c.URL,
			ImageURL:    c.Image,
		})
	}
	return p.store.SaveCourses(ctx, userID, courses)
}
