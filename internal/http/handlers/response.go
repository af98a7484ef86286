// Package handlers provides the HTTP handlers of the café directory.
//
// This file defines the response utilities shared by all endpoints: the JSON
// error envelope, consistent JSON serialization, and HTML page rendering.
//
// Conventions:
//   - Every JSON error has the shape {"error": {"<status text>": "<message>"}}.
//   - `fail()` centralizes error logging and formatting, ensuring 5xx responses
//     are logged with request context for observability.
//   - `ok()` and `page()` write successful JSON and HTML responses.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{"error": {"Not Found": "Sorry, a cafe with that id was not found in the database."}}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spencergreen21/cafeWebsite/internal/http/middleware"
)

// ErrorResponse documents the error envelope in the OpenAPI schema.
// The single key is the HTTP status text.
type ErrorResponse struct {
	Error map[string]string `json:"error" example:"Not Found:Sorry, a cafe with that id was not found in the database."`
}

// fail aborts the request with the JSON error envelope.
//
// Server errors (>=500) are logged using the request-scoped logger from
// middleware, together with cause when it is non-nil.
func fail(c *gin.Context, status int, msg string, cause error) {
	if status >= http.StatusInternalServerError {
		ev := middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("message", msg)
		if cause != nil {
			ev = ev.Err(cause)
		}
		ev.Msg("request failed")
	}
	c.AbortWithStatusJSON(status, middleware.ErrorBody(status, msg))
}

// Fail is the exported variant of fail() without a cause.
//
// External packages (e.g., router setup) call Fail to return consistent error
// envelopes without depending on unexported helpers.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg, nil) }

// notFound writes the 404 envelope for an unknown café id.
func notFound(c *gin.Context) {
	fail(c, http.StatusNotFound, MsgCafeNotFound, nil)
}

// internal writes the 500 envelope and logs err.
func internal(c *gin.Context, err error) {
	fail(c, http.StatusInternalServerError, MsgInternal, err)
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// page renders the named HTML template with data.
func page(c *gin.Context, status int, name string, data any) {
	c.HTML(status, name, data)
}
