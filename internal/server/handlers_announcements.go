package server

import (
	"encoding/json"
	"net/http"

	"github.com/jordan/career-compass/internal/db"
)

// handleListAnnouncements returns all announcements, most recent first.
func (s *Server) handleListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := s.db.ListAnnouncements(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list announcements")
		return
	}
	if announcements == nil {
		announcements = []db.Announcement{}
	}
	s.jsonResponse(w, http.StatusOK, announcements)
}

type createAnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// handleCreateAnnouncement adds a site-wide announcement.
func (s *Server) handleCreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req createAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		s.errorResponse(w, http.StatusBadRequest, "title and content are required")
		return
	}

	id, err := s.db.CreateAnnouncement(r.Context(), req.Title, req.Content)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create announcement")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]int{"id": id})
}
