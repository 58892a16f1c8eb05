package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterInstructor handles POST /instructors/register.
func (h *Handlers) RegisterInstructor(c echo.Context) error {
	return h.register(c, h.instructorAuth)
}

// LoginInstructor handles POST /instructors/login.
func (h *Handlers) LoginInstructor(c echo.Context) error {
	return h.login(c, h.instructorAuth)
}

// ListInstructors handles GET /instructors.
func (h *Handlers) ListInstructors(c echo.Context) error {
	return c.JSON(http.StatusOK, h.instructorAuth.GetAll())
}
