package server

import (
	"net/http"

	"github.com/jordan/career-compass/internal/server/middleware"
	"github.com/jordan/career-compass/internal/types"
)

// handleGetProfile returns the authenticated user with their questionnaire
// answers joined to question text.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}
	if user == nil {
		s.errorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	rows, err := s.db.ListAnsweredQuestions(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get answers")
		return
	}

	questions := make([]types.AnsweredQuestion, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, types.AnsweredQuestion{
			ID:       row.QuestionID,
			Question: row.QuestionText,
			Answer:   row.Answer,
		})
	}

	profile := types.UserProfile{
		User:      toAPIUser(user),
		Questions: questions,
	}
	s.jsonResponse(w, http.StatusOK, profile)
}
