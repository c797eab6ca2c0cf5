package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jordan/career-compass/internal/db"
	"github.com/jordan/career-compass/internal/server/middleware"
)

// handleListQuestions returns all questionnaire questions with their options.
func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := s.db.ListQuestions(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list questions")
		return
	}
	if questions == nil {
		questions = []db.Question{}
	}
	s.jsonResponse(w, http.StatusOK, questions)
}

type createQuestionRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// handleCreateQuestion adds a questionnaire question with its options.
func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Question == "" {
		s.errorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	id, err := s.db.CreateQuestion(r.Context(), req.Question)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}
	if len(req.Options) > 0 {
		if err := s.db.AddQuestionOptions(r.Context(), id, req.Options); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to add question options")
			return
		}
	}

	s.jsonResponse(w, http.StatusCreated, map[string]int{"id": id})
}

// handleDeleteQuestion removes a question; its options and answers cascade.
func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	deleted, err := s.db.DeleteQuestion(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Question deleted"})
}

type saveAnswersRequest struct {
	Answers []answerSubmission `json:"answers"`
}

type answerSubmission struct {
	QuestionID int      `json:"question_id"`
	Answer     []string `json:"answer"`
}

// handleSaveAnswers upserts the authenticated user's answers.
func (s *Server) handleSaveAnswers(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req saveAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Answers) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "answers is required")
		return
	}

	for _, a := range req.Answers {
		if a.QuestionID <= 0 || len(a.Answer) == 0 {
			s.errorResponse(w, http.StatusBadRequest, "each answer needs a question_id and at least one value")
			return
		}
		if err := s.db.SaveAnswer(r.Context(), userID, a.QuestionID, db.StringArray(a.Answer)); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to save answers")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Answers saved"})
}
