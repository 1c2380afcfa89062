package api

import (
	"errors"
	"fmt"
	"net/http"

	"mission-service/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse confirms an operation that has no payload
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HTTPError is returned by handlers to pick the status code and the message
// shown to the caller. Err is logged, never sent.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func badRequest(message string) *HTTPError {
	return &HTTPError{Code: http.StatusBadRequest, Message: message}
}

func notFound(message string) *HTTPError {
	return &HTTPError{Code: http.StatusNotFound, Message: message}
}

func serverError(message string, err error) *HTTPError {
	return &HTTPError{Code: http.StatusInternalServerError, Message: message, Err: err}
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler rendering errors as
// {success:false, error:<message>}. Unknown errors become a generic 500.
func NewHTTPErrorHandler(log logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(http.StatusInternalServerError)

		var appErr *HTTPError
		var echoErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			code = appErr.Code
			message = appErr.Message
		case errors.As(err, &echoErr):
			code = echoErr.Code
			if m, ok := echoErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		}

		if code >= http.StatusInternalServerError {
			log.Error(message,
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, ErrorResponse{Success: false, Error: message})
		}
		if err != nil {
			log.Error("Failed to write error response", "error", err)
		}
	}
}
