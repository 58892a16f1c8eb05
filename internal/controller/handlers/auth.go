package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/musicschool/progress-api/internal/service"
)

// register and login are shared by the instructor and student endpoints,
// which differ only in which auth service backs them.

func (h *Handlers) register(c echo.Context, auth *service.AuthService) error {
	var dto RegisterDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	account, err := auth.Register(dto.Name, dto.Email, dto.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, account)
}

func (h *Handlers) login(c echo.Context, auth *service.AuthService) error {
	var dto LoginDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	token, err := auth.Login(dto.Email, dto.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
