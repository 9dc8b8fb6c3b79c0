// Package services – ProfileService
//
// This file implements the ProfileService, covering the remaining per-user
// profile categories that share the one-record-per-user shape: lifestyle,
// medical history, and symptoms. Each category has a typed save/get pair
// delegating to the same upsert/fetch contract as health tips, plus generic
// by-id escape hatches for operator tooling.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/healthtrack/go-health-backend/internal/domain"
)

// RecordStoreAdmin extends RecordStore with the generic by-id operations.
type RecordStoreAdmin interface {
	RecordStore
	FetchByID(ctx context.Context, category, id string) (*domain.ProfileRecord, error)
	UpdateByID(ctx context.Context, category, id string, payload any) error
	DeleteByID(ctx context.Context, category, id string) error
}

// ProfileService saves and retrieves typed per-category profile data.
type ProfileService struct {
	Records RecordStoreAdmin
	Timeout time.Duration
}

// NewProfileService constructs a ProfileService.
func NewProfileService(rs RecordStoreAdmin, timeout time.Duration) *ProfileService {
	return &ProfileService{Records: rs, Timeout: timeout}
}

// SaveLifestyle upserts the user's lifestyle record.
func (s *ProfileService) SaveLifestyle(ctx context.Context, userID string, data domain.Lifestyle) error {
	if data.Lifestyle == "" {
		return ErrInvalidInput
	}
	return s.save(ctx, userID, domain.CategoryLifestyle, data)
}

// GetLifestyle returns the user's lifestyle record, or store.ErrNotFound.
func (s *ProfileService) GetLifestyle(ctx context.Context, userID string) (*domain.Lifestyle, error) {
	var out domain.Lifestyle
	if err := s.get(ctx, userID, domain.CategoryLifestyle, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveMedicalHistory upserts the user's medical history record.
func (s *ProfileService) SaveMedicalHistory(ctx context.Context, userID string, data domain.MedicalHistory) error {
	if data.History == "" && len(data.Allergies) == 0 {
		return ErrInvalidInput
	}
	return s.save(ctx, userID, domain.CategoryMedicalHistory, data)
}

// GetMedicalHistory returns the user's medical history record.
func (s *ProfileService) GetMedicalHistory(ctx context.Context, userID string) (*domain.MedicalHistory, error) {
	var out domain.MedicalHistory
	if err := s.get(ctx, userID, domain.CategoryMedicalHistory, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveSymptoms upserts the user's symptoms record.
func (s *ProfileService) SaveSymptoms(ctx context.Context, userID string, data domain.Symptoms) error {
	if len(data.Symptoms) == 0 {
		return ErrInvalidInput
	}
	return s.save(ctx, userID, domain.CategorySymptoms, data)
}

// GetSymptoms returns the user's symptoms record.
func (s *ProfileService) GetSymptoms(ctx context.Context, userID string) (*domain.Symptoms, error) {
	var out domain.Symptoms
	if err := s.get(ctx, userID, domain.CategorySymptoms, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRecord removes a record by id within a category. Operator action;
// nothing in the normal data flow deletes records.
func (s *ProfileService) DeleteRecord(ctx context.Context, category, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.Records.DeleteByID(ctx, category, id)
}

func (s *ProfileService) save(ctx context.Context, userID, category string, payload any) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	_, err := s.Records.Upsert(ctx, userID, category, payload)
	return err
}

func (s *ProfileService) get(ctx context.Context, userID, category string, out any) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rec, err := s.Records.Fetch(ctx, userID, category)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(rec.Payload, out); err != nil {
		return fmt.Errorf("decode %s record %s: %w", category, rec.ID, err)
	}
	return nil
}

func (s *ProfileService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.Timeout)
}
