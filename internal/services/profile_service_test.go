package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/healthtrack/go-health-backend/internal/domain"
	"github.com/healthtrack/go-health-backend/internal/store"
)

func newProfileService(t *testing.T) *ProfileService {
	t.Helper()
	rs, _ := newTestRecords(t)
	return NewProfileService(rs, time.Second)
}

func TestProfile_Lifestyle_RoundTrip(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	in := domain.Lifestyle{Lifestyle: "Active", ExerciseFrequency: "2-3 times a week"}
	if err := svc.SaveLifestyle(ctx, "u1", in); err != nil {
		t.Fatalf("SaveLifestyle: %v", err)
	}

	got, err := svc.GetLifestyle(ctx, "u1")
	if err != nil {
		t.Fatalf("GetLifestyle: %v", err)
	}
	if got.Lifestyle != "Active" || got.ExerciseFrequency != "2-3 times a week" {
		t.Fatalf("unexpected lifestyle: %+v", got)
	}
}

func TestProfile_Lifestyle_ReplaceNotMerge(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	if err := svc.SaveLifestyle(ctx, "u1", domain.Lifestyle{Lifestyle: "Sedentary", ExerciseFrequency: "Never"}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	// Second save omits ExerciseFrequency; full replace means it must be gone.
	if err := svc.SaveLifestyle(ctx, "u1", domain.Lifestyle{Lifestyle: "Very Active"}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := svc.GetLifestyle(ctx, "u1")
	if err != nil {
		t.Fatalf("GetLifestyle: %v", err)
	}
	if got.Lifestyle != "Very Active" || got.ExerciseFrequency != "" {
		t.Fatalf("payload was merged, not replaced: %+v", got)
	}
}

func TestProfile_MedicalHistory_RoundTrip(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	in := domain.MedicalHistory{History: "asthma", Allergies: []string{"pollen", "dust"}}
	if err := svc.SaveMedicalHistory(ctx, "u1", in); err != nil {
		t.Fatalf("SaveMedicalHistory: %v", err)
	}

	got, err := svc.GetMedicalHistory(ctx, "u1")
	if err != nil {
		t.Fatalf("GetMedicalHistory: %v", err)
	}
	if got.History != "asthma" || len(got.Allergies) != 2 {
		t.Fatalf("unexpected medical history: %+v", got)
	}
}

func TestProfile_Symptoms_RoundTripAndNotFound(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	if _, err := svc.GetSymptoms(ctx, "u1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected store.ErrNotFound before save, got %v", err)
	}

	if err := svc.SaveSymptoms(ctx, "u1", domain.Symptoms{Symptoms: []string{"cough"}}); err != nil {
		t.Fatalf("SaveSymptoms: %v", err)
	}
	got, err := svc.GetSymptoms(ctx, "u1")
	if err != nil {
		t.Fatalf("GetSymptoms: %v", err)
	}
	if len(got.Symptoms) != 1 || got.Symptoms[0] != "cough" {
		t.Fatalf("unexpected symptoms: %+v", got)
	}
}

func TestProfile_InvalidInput(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	if err := svc.SaveLifestyle(ctx, "", domain.Lifestyle{Lifestyle: "Active"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank user, got %v", err)
	}
	if err := svc.SaveLifestyle(ctx, "u1", domain.Lifestyle{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty lifestyle, got %v", err)
	}
	if err := svc.SaveSymptoms(ctx, "u1", domain.Symptoms{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty symptoms, got %v", err)
	}
	if _, err := svc.GetMedicalHistory(ctx, " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank user on get, got %v", err)
	}
}

func TestProfile_DeleteRecord(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	if err := svc.SaveSymptoms(ctx, "u1", domain.Symptoms{Symptoms: []string{"fever"}}); err != nil {
		t.Fatalf("SaveSymptoms: %v", err)
	}
	id := store.RecordID("u1", domain.CategorySymptoms)
	if err := svc.DeleteRecord(ctx, domain.CategorySymptoms, id); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}
	if _, err := svc.GetSymptoms(ctx, "u1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected store.ErrNotFound after delete, got %v", err)
	}
}
