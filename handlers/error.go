package handlers

import (
	"log"
	"net/http"

	"tribunal_app_go/apperr"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler turns service errors into the response envelope. Errors
// from the apperr taxonomy map to their HTTP status with their message
// intact; anything else becomes an opaque 500 so internals never leak.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	if kind, ok := apperr.KindOf(err); ok {
		status = apperr.HTTPStatus(kind)
		message = err.Error()
	} else if httpErr, ok := err.(*echo.HTTPError); ok {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(status)
		}
	} else {
		log.Printf("[ERROR] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if writeErr := c.JSON(status, envelope{Success: false, Error: message}); writeErr != nil {
		log.Printf("[ERROR] failed to write error response: %v", writeErr)
	}
}
