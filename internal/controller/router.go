package controller

import (
	"github.com/labstack/echo/v4"

	"github.com/musicschool/progress-api/internal/controller/handlers"
	"github.com/musicschool/progress-api/internal/model"
)

// RegisterRoutes wires the HTTP surface. Listing accounts is an instructor
// privilege; a student may only read their own progress history.
func RegisterRoutes(e *echo.Echo, h *handlers.Handlers, auth *AuthMiddleware) {
	e.GET("/", h.Banner)
	e.GET("/swagger/doc.json", h.OpenAPIDoc)

	e.POST("/instructors/register", h.RegisterInstructor)
	e.POST("/instructors/login", h.LoginInstructor)
	e.GET("/instructors", h.ListInstructors, auth.Authenticate, auth.RequireRole(model.RoleInstructor))

	e.POST("/students/register", h.RegisterStudent)
	e.POST("/students/login", h.LoginStudent)
	e.GET("/students", h.ListStudents, auth.Authenticate, auth.RequireRole(model.RoleInstructor))
	e.GET("/students/progress/:studentId", h.StudentProgress, auth.Authenticate, auth.RequireRole(model.RoleStudent))

	e.POST("/lessons", h.CreateLesson, auth.Authenticate, auth.RequireRole(model.RoleInstructor))
	e.GET("/lessons", h.ListLessons, auth.Authenticate)

	e.POST("/progress", h.AddProgress, auth.Authenticate, auth.RequireRole(model.RoleInstructor))
}
