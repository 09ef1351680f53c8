package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vocabree/vocabree-server/internal/errors"
	"github.com/vocabree/vocabree-server/internal/services"
)

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"languages": s.LessonService.Languages(r.Context())})
}

func (s *Server) handleGetLesson(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(chi.URLParam(r, "level"))
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("level must be an integer"))
		return
	}

	lesson, err := s.LessonService.GetLesson(r.Context(), chi.URLParam(r, "languageID"), chi.URLParam(r, "skillID"), level)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, lesson)
}

func (s *Server) handleNextLesson(w http.ResponseWriter, r *http.Request) {
	lesson, err := s.LessonService.GetNextLesson(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "languageID"), chi.URLParam(r, "skillID"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	if lesson == nil {
		respondJSON(w, http.StatusOK, map[string]any{"lesson": nil, "mastered": true})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"lesson": lesson, "mastered": false})
}

type practiceLessonRequest struct {
	Level             int      `json:"level"`
	MissedExerciseIDs []string `json:"missed_exercise_ids"`
}

func (s *Server) handlePracticeLesson(w http.ResponseWriter, r *http.Request) {
	var req practiceLessonRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	lesson, err := s.LessonService.GetPracticeLesson(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "languageID"), chi.URLParam(r, "skillID"), req.Level, req.MissedExerciseIDs)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, lesson)
}

func (s *Server) handleCompleteLesson(w http.ResponseWriter, r *http.Request) {
	var req services.CompleteLessonRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.LessonService.CompleteLesson(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "languageID"), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
