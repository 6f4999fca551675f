package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thegoanwedding/marketplace/internal/logging"
)

const internalMessage = "internal server error"

// ErrorHandler renders every error as {"message": "..."}. Causes of 5xx
// responses are logged, never sent to the client.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := internalMessage

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
		if code >= http.StatusInternalServerError {
			msg = internalMessage
		}
	}

	if code >= http.StatusInternalServerError {
		l := logging.Component("http")
		l.Error().Err(err).
			Str("method", c.Request().Method).
			Str("uri", c.Request().RequestURI).
			Msg("request failed")
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, map[string]string{"message": msg})
}
