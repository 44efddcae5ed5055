package middleware

import (
	"customerRenewal/pkg/logger"
	jsonres "customerRenewal/pkg/response"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that escape handlers as JSON envelopes.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", "error", err, "path", c.Path(), "method", c.Request().Method)
	}

	var respErr error
	if c.Request().Method == http.MethodHead {
		respErr = c.NoContent(code)
	} else {
		respErr = c.JSON(code, jsonres.Error(errorCode(code), message, nil))
	}
	if respErr != nil {
		logger.Error("Failed to write error response", "error", respErr)
	}
}

func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	default:
		return "INTERNAL_ERROR"
	}
}
