// Package api exposes the progression engine as a JSON HTTP API.
package api

import (
	"github.com/vocabree/vocabree-server/internal/services"
)

type Server struct {
	ProfileService  services.ProfileService
	ProgressService services.ProgressService
	LessonService   services.LessonService
}
