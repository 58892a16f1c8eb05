package handlers

import (
	"go.uber.org/zap"

	"github.com/musicschool/progress-api/internal/service"
)

// Handlers carries the services the HTTP layer depends on.
type Handlers struct {
	instructorAuth *service.AuthService
	studentAuth    *service.AuthService
	lessons        *service.LessonService
	progress       *service.ProgressService
	logger         *zap.Logger
}

func New(
	instructorAuth *service.AuthService,
	studentAuth *service.AuthService,
	lessons *service.LessonService,
	progress *service.ProgressService,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		instructorAuth: instructorAuth,
		studentAuth:    studentAuth,
		lessons:        lessons,
		progress:       progress,
		logger:         logger,
	}
}
