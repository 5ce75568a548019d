package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
)

// envelope is the uniform response body. Ok mirrors the HTTP status so
// clients reading only the body can still branch on success.
type envelope struct {
	Ok    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func respondData(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, envelope{Ok: true, Data: data})
}

func respondCreated(ctx echo.Context, data any) error {
	return respondData(ctx, http.StatusCreated, data)
}

func respondOK(ctx echo.Context, data any) error {
	return respondData(ctx, http.StatusOK, data)
}

// respondError maps the application error classes onto HTTP statuses.
// Unclassified errors are reported as a generic 500 so internals never leak
// into response bodies.
func respondError(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(status, envelope{Ok: false, Error: message})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, envelope{Ok: false, Error: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
