package handlers

import (
	"log"
	"net/http"

	"github.com/novafeed/backend/internal/apperr"
	"github.com/labstack/echo/v4"
)

// httpError maps a core error to the boundary's HTTP response. Validation
// and not-found carry their message through; storage failures are logged and
// surfaced as a generic message only.
func httpError(err error) *echo.HTTPError {
	switch apperr.KindOf(err) {
	case apperr.Validation:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case apperr.NotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case apperr.Conflict:
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		log.Printf("internal error: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
