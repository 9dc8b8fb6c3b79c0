// Profile category HTTP handlers.
//
// This file exposes the REST endpoints for the remaining per-user profile
// categories, all sharing the one-record-per-user contract of health tips:
//   - POST /lifestyle            GET /lifestyle/{userId}
//   - POST /medicalHistory       GET /medicalHistory/{userId}
//   - POST /symptoms             GET /symptoms/{userId}
//   - DELETE /records/{category}/{id}   (operator escape hatch)
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack/go-health-backend/internal/domain"
	"github.com/healthtrack/go-health-backend/internal/services"
	"github.com/healthtrack/go-health-backend/internal/store"
)

// ProfileService defines the typed per-category operations consumed by the
// HTTP handlers.
type ProfileService interface {
	SaveLifestyle(ctx context.Context, userID string, data domain.Lifestyle) error
	GetLifestyle(ctx context.Context, userID string) (*domain.Lifestyle, error)
	SaveMedicalHistory(ctx context.Context, userID string, data domain.MedicalHistory) error
	GetMedicalHistory(ctx context.Context, userID string) (*domain.MedicalHistory, error)
	SaveSymptoms(ctx context.Context, userID string, data domain.Symptoms) error
	GetSymptoms(ctx context.Context, userID string) (*domain.Symptoms, error)
	DeleteRecord(ctx context.Context, category, id string) error
}

// SaveLifestyleRequest is the JSON payload for saving lifestyle data.
type SaveLifestyleRequest struct {
	UserID string `json:"userId" binding:"required" example:"user123"`
	domain.Lifestyle
}

// SaveMedicalHistoryRequest is the JSON payload for saving medical history.
type SaveMedicalHistoryRequest struct {
	UserID string `json:"userId" binding:"required" example:"user123"`
	domain.MedicalHistory
}

// SaveSymptomsRequest is the JSON payload for saving symptoms.
type SaveSymptomsRequest struct {
	UserID string `json:"userId" binding:"required" example:"user123"`
	domain.Symptoms
}

// SaveLifestyle handles POST /lifestyle.
func (h *Handlers) SaveLifestyle(c *gin.Context) {
	var req SaveLifestyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "userId and lifestyle are required")
		return
	}
	err := h.profileSvc.SaveLifestyle(c.Request.Context(), strings.TrimSpace(req.UserID), req.Lifestyle)
	h.saved(c, err, "lifestyle")
}

// GetLifestyle handles GET /lifestyle/:userId.
func (h *Handlers) GetLifestyle(c *gin.Context) {
	data, err := h.profileSvc.GetLifestyle(c.Request.Context(), strings.TrimSpace(c.Param("userId")))
	if err != nil {
		h.fetchFailed(c, err, "lifestyle")
		return
	}
	ok(c, http.StatusOK, data)
}

// SaveMedicalHistory handles POST /medicalHistory.
func (h *Handlers) SaveMedicalHistory(c *gin.Context) {
	var req SaveMedicalHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "userId and medicalHistory are required")
		return
	}
	err := h.profileSvc.SaveMedicalHistory(c.Request.Context(), strings.TrimSpace(req.UserID), req.MedicalHistory)
	h.saved(c, err, "medical history")
}

// GetMedicalHistory handles GET /medicalHistory/:userId.
func (h *Handlers) GetMedicalHistory(c *gin.Context) {
	data, err := h.profileSvc.GetMedicalHistory(c.Request.Context(), strings.TrimSpace(c.Param("userId")))
	if err != nil {
		h.fetchFailed(c, err, "medical history")
		return
	}
	ok(c, http.StatusOK, data)
}

// SaveSymptoms handles POST /symptoms.
func (h *Handlers) SaveSymptoms(c *gin.Context) {
	var req SaveSymptomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "userId and symptoms are required")
		return
	}
	err := h.profileSvc.SaveSymptoms(c.Request.Context(), strings.TrimSpace(req.UserID), req.Symptoms)
	h.saved(c, err, "symptoms")
}

// GetSymptoms handles GET /symptoms/:userId.
func (h *Handlers) GetSymptoms(c *gin.Context) {
	data, err := h.profileSvc.GetSymptoms(c.Request.Context(), strings.TrimSpace(c.Param("userId")))
	if err != nil {
		h.fetchFailed(c, err, "symptoms")
		return
	}
	ok(c, http.StatusOK, data)
}

// DeleteRecord handles DELETE /records/:category/:id. Explicit operator
// action; nothing in the normal flow deletes records.
func (h *Handlers) DeleteRecord(c *gin.Context) {
	category := c.Param("category")
	if !knownCategory(category) {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unknown category")
		return
	}
	err := h.profileSvc.DeleteRecord(c.Request.Context(), category, c.Param("id"))
	switch {
	case err == nil:
		noContent(c)
	case errors.Is(err, store.ErrNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "record not found")
	case errors.Is(err, store.ErrUnavailable):
		failCause(c, http.StatusInternalServerError, ErrCodeStoreUnavailable, "Error deleting record.", err.Error())
	default:
		failCause(c, http.StatusInternalServerError, ErrCodeInternal, "Error deleting record.", err.Error())
	}
}

// saved maps save-path errors onto the shared response contract.
func (h *Handlers) saved(c *gin.Context, err error, what string) {
	switch {
	case err == nil:
		ok(c, http.StatusOK, gin.H{"message": "Data saved successfully."})
	case errors.Is(err, services.ErrInvalidInput):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "userId and "+what+" data are required")
	case errors.Is(err, store.ErrUnavailable):
		failCause(c, http.StatusInternalServerError, ErrCodeStoreUnavailable, "Error saving "+what+" data.", err.Error())
	default:
		failCause(c, http.StatusInternalServerError, ErrCodeInternal, "Error saving "+what+" data.", err.Error())
	}
}

// fetchFailed maps fetch-path errors onto the shared response contract.
func (h *Handlers) fetchFailed(c *gin.Context, err error, what string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "No "+what+" data found for this user.")
	case errors.Is(err, services.ErrInvalidInput):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "userId is required")
	case errors.Is(err, store.ErrUnavailable):
		failCause(c, http.StatusInternalServerError, ErrCodeStoreUnavailable, "Error fetching "+what+" data.", err.Error())
	default:
		failCause(c, http.StatusInternalServerError, ErrCodeInternal, "Error fetching "+what+" data.", err.Error())
	}
}

// knownCategory restricts the generic record operations to the categories
// this API owns.
func knownCategory(category string) bool {
	for _, c := range domain.Categories() {
		if c == category {
			return true
		}
	}
	return false
}
