// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements RedactingLogger, the structured access logger. It
// scrubs credentials and obvious PII from request metadata before emitting
// logs and attaches a request-scoped zerolog.Logger for handlers.
//
// Scrubbing rules:
//   - never logs request or response bodies (form fields, including the
//     api-key, stay out of logs)
//   - api_key / api-key values in query strings are replaced
//   - emails, phone numbers, and UUIDs are pattern-redacted
//   - sensitive headers (Authorization, Cookie, Set-Cookie, plus custom)
//     are fully masked
//
// Usage:
//
//	r := gin.New()
//	r.Use(middleware.RequestID())
//	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
//	    MaskHeaders: []string{"X-Api-Key"},
//	}))
package middleware

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RedactOptions configures additional scrub behavior for RedactingLogger.
//
// MaskHeaders specifies extra HTTP header names whose values will be fully
// replaced with "[REDACTED]". Matching is case-insensitive and merged with
// built-in sensitive headers ("Authorization", "Cookie", "Set-Cookie").
type RedactOptions struct {
	MaskHeaders []string
}

var (
	apiKeyRE = regexp.MustCompile(`(?i)\b(api[_-]key=)[^&]*`)
	uuidRE   = regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	emailRE  = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	// Digits-only phone pattern (prevents matching hex characters from UUIDs).
	phoneRE = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

// redact applies the scrub patterns to s.
// Order matters: key → IDs → email → phone (phone is the loosest).
func redact(s string) string {
	if s == "" {
		return s
	}
	out := apiKeyRE.ReplaceAllString(s, "${1}[REDACTED]")
	out = uuidRE.ReplaceAllString(out, "[REDACTED:id]")
	out = emailRE.ReplaceAllString(out, "[REDACTED:email]")
	out = phoneRE.ReplaceAllString(out, "[REDACTED:phone]")
	return out
}

// RedactingLogger returns a Gin middleware that logs HTTP requests and
// responses with sensitive values scrubbed.
//
// Behavior:
//   - Stores a request-scoped logger (request_id, method, path) under the
//     "logger" context key; see LoggerFrom.
//   - Logs method, path, query string, status, response size, latency,
//     and request headers (with scrubbing applied).
//   - Logs at INFO by default, WARN for 4xx, and ERROR for 5xx responses or
//     when handlers recorded errors on the Gin context.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	maskHeaders := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			maskHeaders[h] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		safeQuery := truncate(redact(c.Request.URL.RawQuery), maxQueryLogLength)

		safeHeaders := make(map[string]string, len(c.Request.Header))
		for k, vv := range c.Request.Header {
			if _, ok := maskHeaders[strings.ToLower(k)]; ok {
				safeHeaders[k] = "[REDACTED]"
				continue
			}
			safeHeaders[k] = redact(strings.Join(vv, ", "))
		}

		reqID := RequestIDFrom(c)
		if reqID == "" {
			reqID = c.Writer.Header().Get(requestIDHeader)
		}
		if reqID == "" {
			reqID = c.GetHeader(requestIDHeader)
		}

		scoped := log.With().
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", path).
			Logger()
		c.Set(loggerKey, &scoped)

		c.Next()

		status := c.Writer.Status()
		ev := scoped.Info()
		switch {
		case status >= 500 || len(c.Errors) > 0:
			ev = scoped.Error()
		case status >= 400:
			ev = scoped.Warn()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}

		ev.
			Str("query", safeQuery).
			Str("remote_ip", c.ClientIP()).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Interface("headers", safeHeaders).
			Msg("http_request")
	}
}
