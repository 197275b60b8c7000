// Package handler contains the Echo HTTP handlers for the public and
// admin API surfaces.
package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ilnabucco/restaurant-reservation/internal/repository"
	"github.com/ilnabucco/restaurant-reservation/internal/service"
)

// dbTimeout bounds every database call made from a handler.
const dbTimeout = 5 * time.Second

// ok wraps a payload in the success envelope.
func ok(c echo.Context, status int, data any) error {
	return c.JSON(status, echo.Map{"success": true, "data": data})
}

// okMessage answers operations that have no payload, such as deletes.
func okMessage(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": msg})
}

// fail maps service and repository sentinels onto the HTTP error
// taxonomy. Anything unrecognized is answered as a 500 with a generic
// message; the cause goes to the request log, never to the client.
func fail(c echo.Context, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": verr.Error()})
	case errors.Is(err, service.ErrEmailBanned):
		return c.JSON(http.StatusForbidden, echo.Map{"success": false, "error": "this email address is banned"})
	case errors.Is(err, service.ErrNotFound), errors.Is(err, sql.ErrNoRows):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "already exists"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}

// idParam parses the :id route parameter.
func idParam(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
