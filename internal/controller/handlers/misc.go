package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/musicschool/progress-api/api"
)

// Banner handles GET /.
func (h *Handlers) Banner(c echo.Context) error {
	return c.String(http.StatusOK, "Music Student Progress API")
}

// OpenAPIDoc handles GET /swagger/doc.json, serving the embedded API
// document.
func (h *Handlers) OpenAPIDoc(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, api.OpenAPIDoc)
}
