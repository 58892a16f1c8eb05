package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// RegisterStudent handles POST /students/register.
func (h *Handlers) RegisterStudent(c echo.Context) error {
	return h.register(c, h.studentAuth)
}

// LoginStudent handles POST /students/login.
func (h *Handlers) LoginStudent(c echo.Context) error {
	return h.login(c, h.studentAuth)
}

// ListStudents handles GET /students.
func (h *Handlers) ListStudents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.studentAuth.GetAll())
}

// StudentProgress handles GET /students/progress/:studentId.
func (h *Handlers) StudentProgress(c echo.Context) error {
	studentID, err := strconv.Atoi(c.Param("studentId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid student id"})
	}

	return c.JSON(http.StatusOK, h.progress.StudentProgress(studentID))
}
