package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CreateLesson handles POST /lessons.
func (h *Handlers) CreateLesson(c echo.Context) error {
	var dto CreateLessonDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	lesson := h.lessons.Create(dto.Title, dto.Description)
	return c.JSON(http.StatusCreated, lesson)
}

// ListLessons handles GET /lessons, open to any authenticated caller.
func (h *Handlers) ListLessons(c echo.Context) error {
	return c.JSON(http.StatusOK, h.lessons.GetAll())
}
