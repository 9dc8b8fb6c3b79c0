// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response utilities shared by all endpoints. Success
// bodies keep the wire shapes the mobile client already consumes
// ({message}, {healthTips}, ...); error bodies use a single envelope with a
// stable machine-readable code next to the human-readable message.
//
// Conventions:
//   - All error responses go through fail(), which attaches the request id,
//     logs 5xx with request context, and aborts the chain.
//   - The optional "error" field carries the underlying cause for 5xx
//     responses so operators can correlate without reading server logs.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack/go-health-backend/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// RequestID correlates server logs and client errors.
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Code is a stable, machine-readable string (see errors.go constants).
	Code string `json:"code" example:"not_found"`
	// Message is a human-readable description, safe to show to users.
	Message string `json:"message" example:"No health tips found for this user."`
	// Err carries the underlying cause on 5xx responses.
	Err string `json:"error,omitempty" example:"store unavailable: connection refused"`
}

// fail aborts the request with a structured error and logs server-side
// errors through the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	failCause(c, status, code, msg, "")
}

// failCause is fail() with the underlying cause included in the body.
// Reserved for 5xx responses; the cause is a driver/store message, never a
// stack trace.
func failCause(c *gin.Context, status int, code, msg, cause string) {
	reqID := c.Writer.Header().Get("X-Request-ID")
	resp := ErrorResponse{
		RequestID: reqID,
		Code:      code,
		Message:   msg,
		Err:       cause,
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Str("cause", cause).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail() for use by router fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response with the given status.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
