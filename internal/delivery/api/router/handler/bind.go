package handler

import (
	"bloodlink/internal/delivery/api/middleware"
	"bloodlink/internal/delivery/api/validator"
	"bloodlink/internal/domain/access"
	domainerrors "bloodlink/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and checks its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	return nil
}

// callerOf returns the authorized caller of the request.
func callerOf(c echo.Context) (access.Caller, error) {
	if caller, ok := middleware.GetCaller(c); ok {
		return caller, nil
	}

	// Routes without a stored-identity rule still carry verified claims.
	if email, ok := middleware.GetEmail(c); ok {
		return access.Caller{Email: email}, nil
	}

	return access.Caller{}, domainerrors.ErrUnauthenticated
}

// emailParam returns the decoded :email path parameter.
func emailParam(c echo.Context) string {
	return middleware.PathParam(c, "email")
}
