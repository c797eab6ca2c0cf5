package types

// CourseSuggestion is one course as suggested by the model. The title and
// provider are untrusted free text until resolution confirms them.
type CourseSuggestion struct {
	CourseTitle string `json:"course_title"`
	Provider    string `json:"provider"`
}

// ResolvedCourse is a suggestion enriched with a usable URL and image.
// URL is either a validated direct course page or a provider search page;
// neither field is ever empty.
type ResolvedCourse struct {
	CourseTitle string `json:"course_title"`
	Provider    string `json:"provider"`
	URL         string `json:"url"`
	Image       string `json:"image"`
}

// Recommendation is the model's parsed output before resolution.
type Recommendation struct {
	Summary            string             `json:"summary"`
	RecommendedCourses []CourseSuggestion `json:"recommended_courses"`
}

// RecommendationResult is the final pipeline output returned to the caller
// and persisted per user.
type RecommendationResult struct {
	Summary            string           `json:"summary"`
	RecommendedCourses []ResolvedCourse `json:"recommended_courses"`
}

// AnsweredQuestion pairs a question with the user's (possibly multi-choice)
// answer for prompt construction.
type AnsweredQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Answer   []string `json:"answer"`
}

// UserProfile aggregates a user and their questionnaire answers.
type UserProfile struct {
	User      *User              `json:"user"`
	Questions []AnsweredQuestion `json:"questions"`
}
