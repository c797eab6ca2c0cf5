package server

import (
	"encoding/json"
	"net/http"

	"github.com/jordan/career-compass/internal/db"
	"github.com/jordan/career-compass/internal/server/middleware"
)

// handleListCourses returns the authenticated user's saved courses, most
// recent first.
func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	courses, err := s.db.ListCourses(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list courses")
		return
	}
	if courses == nil {
		courses = []db.Course{}
	}
	s.jsonResponse(w, http.StatusOK, courses)
}

type saveCoursesRequest struct {
	Courses []courseSubmission `json:"courses"`
}

type courseSubmission struct {
	CourseTitle string `json:"course_title"`
	Provider    string `json:"provider"`
	URL         string `json:"url"`
	Image       string `json:"image"`
}

// handleSaveCourses upserts manually added courses for the authenticated
// user, keyed by (user, course title).
func (s *Server) handleSaveCourses(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req saveCoursesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Courses) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "courses is required")
		return
	}

	courses := make([]db.Course, 0, len(req.Courses))
	for _, c := range req.Courses {
		if c.CourseTitle == "" {
			s.errorResponse(w, http.StatusBadRequest, "each course needs a course_title")
			return
		}
		courses = append(courses, db.Course{
			UserID:      userID,
			CourseTitle: c.CourseTitle,
			Provider:    c.Provider,
			URL:         c.URL,
			ImageURL:    c.Image,
		})
	}

	if err := s.db.SaveCourses(r.Context(), userID, courses); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save courses")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"message": "Courses saved"})
}

// handleDeleteCourses removes all saved courses for the authenticated user.
func (s *Server) handleDeleteCourses(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := s.db.DeleteCoursesForUser(r.Context(), userID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete courses")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Courses deleted"})
}
