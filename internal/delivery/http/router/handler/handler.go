// Package handler contains the HTTP endpoint handlers.
package handler

import (
	"strconv"

	"roomie/internal/delivery/http/response"
	domainerrors "roomie/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// pathUUID parses a UUID path parameter. A malformed value yields a 400 whose
// error the handler should return as-is.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_INPUT", "Invalid "+name+" path parameter")
	}

	return id, nil
}

// queryLimit parses an optional limit query parameter. Zero means "use the
// service default".
func queryLimit(c echo.Context) int {
	limitStr := c.QueryParam("limit")
	if limitStr == "" {
		return 0
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return 0
	}

	return limit
}

// handleAppError renders structured application errors; anything else bubbles
// up to the global error handler.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
