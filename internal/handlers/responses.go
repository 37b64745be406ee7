package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "pixbank/internal/errors"
)

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type.
type ErrorResponse = apperrors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code apperrors.ErrorCode, opts ...apperrors.ErrorOption) error {
	errorResponse := apperrors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError hides an internal error behind the generic system
// message; the cause stays in the logs, keyed by trace id.
func SendSystemError(c echo.Context, err error) error {
	c.Logger().Error(err)
	errorResponse := apperrors.NewErrorResponse(apperrors.SystemInternalError, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
