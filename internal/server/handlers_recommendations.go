package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/jordan/career-compass/internal/recommend"
	"github.com/jordan/career-compass/internal/server/middleware"
	"github.com/jordan/career-compass/internal/types"
)

// handleRunRecommendations runs the full recommendation pipeline for the
// authenticated user: prompt, model call, course resolution, persistence.
// Re-running replaces the saved course set.
func (s *Server) handleRunRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := s.pipeline.Run(r.Context(), userID)
	if err != nil {
		if errors.Is(err, recommend.ErrUnavailable) {
			log.Printf("[recommend] unavailable for user %s: %v", userID, err)
			// The course list stays empty; the caller can retry.
			s.jsonResponse(w, http.StatusBadGateway, types.RecommendationResult{
				RecommendedCourses: []types.ResolvedCourse{},
			})
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetSummary returns the most recent career summary for the
// authenticated user.
func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := s.db.GetLatestSummary(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get summary")
		return
	}
	if summary == nil {
		s.errorResponse(w, http.StatusNotFound, "No summary yet")
		return
	}

	s.jsonResponse(w, http.StatusOK, summary)
}
