package domain

import (
	"encoding/json"
	"testing"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:domain_models?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestTableName(t *testing.T) {
	if (Document{}).TableName() != "documents" {
		t.Fatalf("Document.TableName() = %q; want %q", (Document{}).TableName(), "documents")
	}
}

func TestCategories(t *testing.T) {
	got := Categories()
	want := []string{"healthTips", "lifestyle", "medicalHistory", "symptoms"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Categories()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestMigrations_And_Indexes(t *testing.T) {
	db := newDomainDB(t)

	if err := db.AutoMigrate(&Document{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	m := db.Migrator()

	if !m.HasTable(&Document{}) {
		t.Fatalf("expected documents table to exist")
	}
	if !m.HasIndex(&Document{}, "idx_collection_user") {
		t.Fatalf("expected index idx_collection_user on documents")
	}
}

func TestPayloadWireShapes(t *testing.T) {
	// The mobile client reads these keys verbatim; a renamed field is a
	// breaking change even when Go code still compiles.
	cases := []struct {
		in   any
		want string
	}{
		{HealthTips{Tips: []string{"a"}}, `{"healthTips":["a"]}`},
		{Lifestyle{Lifestyle: "Active", ExerciseFrequency: "daily"}, `{"lifestyle":"Active","exerciseFrequency":"daily"}`},
		{MedicalHistory{History: "asthma", Allergies: []string{"pollen"}}, `{"medicalHistory":"asthma","allergies":["pollen"]}`},
		{Symptoms{Symptoms: []string{"fever"}}, `{"symptoms":["fever"]}`},
	}
	for _, tc := range cases {
		b, err := json.Marshal(tc.in)
		if err != nil {
			t.Fatalf("marshal %T: %v", tc.in, err)
		}
		if string(b) != tc.want {
			t.Fatalf("%T wire = %s; want %s", tc.in, b, tc.want)
		}
	}
}
