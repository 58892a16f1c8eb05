package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AddProgress handles POST /progress. The lesson must exist; the student id
// is recorded as supplied.
func (h *Handlers) AddProgress(c echo.Context) error {
	var dto AddProgressDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	entry, err := h.progress.AddProgress(dto.StudentID, dto.LessonID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, entry)
}
