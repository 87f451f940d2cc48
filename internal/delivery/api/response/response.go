// Package response renders API responses. Successful responses are the raw
// payload the client expects; errors share one envelope.
package response

import (
	"net/http"

	deliverycontext "bloodlink/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Message is the body of responses that only carry a notice.
type Message struct {
	Message    string  `json:"message"`
	InsertedID *string `json:"insertedId"`
}

// Success writes data as the raw JSON body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes data with status 200.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// PNG writes an image body.
func PNG(c echo.Context, body []byte) error {
	return c.Blob(http.StatusOK, "image/png", body)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
