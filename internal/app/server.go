package app

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/musicschool/progress-api/internal/config"
	"github.com/musicschool/progress-api/internal/controller"
	"github.com/musicschool/progress-api/internal/controller/handlers"
	"github.com/musicschool/progress-api/internal/model"
	"github.com/musicschool/progress-api/internal/repository"
	"github.com/musicschool/progress-api/internal/service"
)

// NewServer wires the repositories, services and routes into a ready Echo
// instance. All state lives in the repositories constructed here and is
// reachable only through the services that hold them.
func NewServer(cfg *config.Config, logger *zap.Logger) *echo.Echo {
	instructors := repository.NewAccountRepository(model.RoleInstructor)
	students := repository.NewAccountRepository(model.RoleStudent)
	lessons := repository.NewLessonRepository()
	progress := repository.NewProgressRepository()

	tokens := service.NewTokenService(cfg.JWTSecret)
	instructorAuth := service.NewAuthService(instructors, tokens, logger)
	studentAuth := service.NewAuthService(students, tokens, logger)
	lessonService := service.NewLessonService(lessons, logger)
	progressService := service.NewProgressService(progress, lessons, logger)

	h := handlers.New(instructorAuth, studentAuth, lessonService, progressService, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("Request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))

	controller.RegisterRoutes(e, h, controller.NewAuthMiddleware(tokens))

	return e
}
