package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", s.handleCreateProfile)
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/", s.handleGetProfile)
			r.Put("/settings", s.handleUpdateSettings)
			r.Get("/achievements", s.handleAchievements)
			r.Get("/progress", s.handleListProgress)

			r.Route("/languages/{languageID}", func(r chi.Router) {
				r.Get("/progress", s.handleGetProgress)
				r.Post("/xp", s.handleAwardXP)
				r.Get("/skills", s.handleSkillTree)
				r.Post("/skills/{skillID}", s.handleUpdateSkill)
				r.Get("/skills/{skillID}/next-lesson", s.handleNextLesson)
				r.Post("/skills/{skillID}/practice", s.handlePracticeLesson)
				r.Post("/lessons/complete", s.handleCompleteLesson)
				r.Get("/practice-queue", s.handlePracticeQueue)
			})
		})

		r.Get("/languages", s.handleLanguages)
		r.Get("/languages/{languageID}/skills/{skillID}/lessons/{level}", s.handleGetLesson)
	})

	return r
}
