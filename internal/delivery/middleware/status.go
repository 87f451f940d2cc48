package middleware

import (
	"net/http"

	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/errors"

	"github.com/labstack/echo/v4"
)

// statusFromError predicts the status the central error handler will write for err.
func statusFromError(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
