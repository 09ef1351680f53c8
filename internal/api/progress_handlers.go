package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vocabree/vocabree-server/internal/services"
)

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	summary, err := s.ProgressService.GetProgress(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "languageID"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (s *Server) handleListProgress(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.ProgressService.ListProgress(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"progress": summaries})
}

type awardXPRequest struct {
	BaseXP  int `json:"base_xp"`
	BonusXP int `json:"bonus_xp"`
}

func (s *Server) handleAwardXP(w http.ResponseWriter, r *http.Request) {
	var req awardXPRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.ProgressService.AwardXP(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "languageID"), req.BaseXP, req.BonusXP, false)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

type updateSkillRequest struct {
	Level    int      `json:"level"`
	LessonID string   `json:"lesson_id"`
	Accuracy *float64 `json:"accuracy,omitempty"`
}

func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	var req updateSkillRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	record, err := s.ProgressService.UpdateSkillProgress(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "languageID"), services.SkillUpdate{
		SkillID:  chi.URLParam(r, "skillID"),
		Level:    req.Level,
		LessonID: req.LessonID,
		Accuracy: req.Accuracy,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

func (s *Server) handleSkillTree(w http.ResponseWriter, r *http.Request) {
	tree, err := s.ProgressService.SkillTree(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "languageID"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"skills": tree})
}

func (s *Server) handlePracticeQueue(w http.ResponseWriter, r *http.Request) {
	ranked, err := s.ProgressService.PracticeQueue(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "languageID"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"queue": ranked})
}
