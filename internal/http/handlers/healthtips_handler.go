// Health tips HTTP handlers.
//
// This file exposes the REST endpoints for the healthTips category:
//   - POST /healthTips           (save or replace the user's tips)
//   - GET  /healthTips/{userId}  (fetch the user's tips)
//
// Handlers are transport-thin: they validate input, call the application
// service, and translate results into HTTP responses. The contract
// distinguishes "no data yet" (404) from a store outage (500); an empty
// success is never returned in place of either.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack/go-health-backend/internal/services"
	"github.com/healthtrack/go-health-backend/internal/store"
)

// HealthTipsService defines the health-tips operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use and honor the
// provided context.
type HealthTipsService interface {
	// Save replaces the user's full tip list.
	Save(ctx context.Context, userID string, tips []string) error
	// Get returns the user's tips, or store.ErrNotFound.
	Get(ctx context.Context, userID string) ([]string, error)
}

// SaveHealthTipsRequest is the JSON payload for saving health tips.
type SaveHealthTipsRequest struct {
	// UserID identifies the owner of the tips.
	UserID string `json:"userId" binding:"required" example:"user123"`
	// HealthTips is the full, ordered tip list; it replaces any prior list.
	HealthTips []string `json:"healthTips" binding:"required" example:"Drink water,Sleep well"`
}

// HealthTipsResponse wraps the tips returned by GET.
type HealthTipsResponse struct {
	HealthTips []string `json:"healthTips"`
}

// SaveHealthTips godoc
// @ID          saveHealthTips
// @Summary     Save health tips for a user
// @Description Creates or replaces the user's health tips. Saving twice keeps a single record with the last list.
// @Tags        HealthTips
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SaveHealthTipsRequest  true  "User id and full tip list"
//
// @Success     200  {object} map[string]string
// @Failure     400  {object} handlers.ErrorResponse "Missing userId or healthTips"
// @Failure     500  {object} handlers.ErrorResponse "Store unavailable"
// @Router      /healthTips [post]
func (h *Handlers) SaveHealthTips(c *gin.Context) {
	var req SaveHealthTipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "userId and healthTips are required")
		return
	}

	err := h.tipsSvc.Save(c.Request.Context(), strings.TrimSpace(req.UserID), req.HealthTips)
	switch {
	case err == nil:
		ok(c, http.StatusOK, gin.H{"message": "Health tips saved successfully."})
	case errors.Is(err, services.ErrInvalidInput):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "userId and healthTips are required")
	case errors.Is(err, store.ErrUnavailable):
		failCause(c, http.StatusInternalServerError, ErrCodeStoreUnavailable, "Error saving health tips.", err.Error())
	default:
		failCause(c, http.StatusInternalServerError, ErrCodeInternal, "Error saving health tips.", err.Error())
	}
}

// GetHealthTips godoc
// @ID          getHealthTips
// @Summary     Fetch health tips for a user
// @Description Returns the user's tip list. A user without tips yields 404, not an empty list.
// @Tags        HealthTips
// @Produce     json
//
// @Param       userId  path  string  true  "User ID"  example(user123)
//
// @Success     200  {object} handlers.HealthTipsResponse
// @Failure     404  {object} handlers.ErrorResponse "No tips for this user"
// @Failure     500  {object} handlers.ErrorResponse "Store unavailable"
// @Router      /healthTips/{userId} [get]
func (h *Handlers) GetHealthTips(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userId"))

	tips, err := h.tipsSvc.Get(c.Request.Context(), userID)
	switch {
	case err == nil:
		ok(c, http.StatusOK, HealthTipsResponse{HealthTips: tips})
	case errors.Is(err, store.ErrNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "No health tips found for this user.")
	case errors.Is(err, services.ErrInvalidInput):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "userId is required")
	case errors.Is(err, store.ErrUnavailable):
		failCause(c, http.StatusInternalServerError, ErrCodeStoreUnavailable, "Error fetching health tips.", err.Error())
	default:
		failCause(c, http.StatusInternalServerError, ErrCodeInternal, "Error fetching health tips.", err.Error())
	}
}
