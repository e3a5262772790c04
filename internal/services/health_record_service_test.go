package services_test

import (
	"errors"
	"testing"

	"github.com/greenloop/plantcare/internal/models"
	"github.com/greenloop/plantcare/internal/services"
	"github.com/greenloop/plantcare/internal/types"
)

// TestHealthRecordInputValidate tests the pre-persistence validation rules
func TestHealthRecordInputValidate(t *testing.T) {
	valid := services.HealthRecordInput{
		TrackingID:      "some-id",
		MoistureLevel:   "High",
		PestPresence:    true,
		PestPresenceSet: true,
	}

	cases := []struct {
		name   string
		mutate func(*services.HealthRecordInput)
		reject bool
	}{
		{"valid input", func(in *services.HealthRecordInput) {}, false},
		{"deficiency may be named", func(in *services.HealthRecordInput) { in.NutrientDeficiency = "Nitrogen Deficiency" }, false},
		{"missing tracking id", func(in *services.HealthRecordInput) { in.TrackingID = "" }, true},
		{"missing moisture", func(in *services.HealthRecordInput) { in.MoistureLevel = "" }, true},
		{"unknown moisture", func(in *services.HealthRecordInput) { in.MoistureLevel = "Soggy" }, true},
		{"missing pest presence", func(in *services.HealthRecordInput) { in.PestPresenceSet = false }, true},
		{"unknown deficiency", func(in *services.HealthRecordInput) { in.NutrientDeficiency = "Iron Deficiency" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			err := in.Validate()
			if tc.reject && err == nil {
				t.Error("Expected validation error")
			}
			if !tc.reject && err != nil {
				t.Errorf("Expected input to pass, got %v", err)
			}
		})
	}
}

// TestAddHealthRecordDefaultDeficiency tests the None default
func TestAddHealthRecordDefaultDeficiency(t *testing.T) {
	db := setupTestDB(t)
	plants := seedTestCatalog(t, db)

	instance, err := services.TrackPlant(db, testUser, plants[0].ID, "")
	if err != nil {
		t.Fatalf("Failed to track plant: %v", err)
	}

	record, err := services.AddHealthRecord(db, testUser, services.HealthRecordInput{
		TrackingID:      instance.ID,
		MoistureLevel:   "Low",
		PestPresence:    false,
		PestPresenceSet: true,
	})
	if err != nil {
		t.Fatalf("Failed to add health record: %v", err)
	}

	if record.NutrientDeficiency != models.DeficiencyNone {
		t.Errorf("Expected deficiency None, got %q", record.NutrientDeficiency)
	}
	if record.RecordedAt.IsZero() {
		t.Error("Expected recorded_at to be set")
	}
}

// TestAddHealthRecordOwnership tests that recording against another user's
// instance is refused
func TestAddHealthRecordOwnership(t *testing.T) {
	db := setupTestDB(t)
	plants := seedTestCatalog(t, db)

	instance, err := services.TrackPlant(db, testUser, plants[0].ID, "")
	if err != nil {
		t.Fatalf("Failed to track plant: %v", err)
	}

	_, err = services.AddHealthRecord(db, otherUser, services.HealthRecordInput{
		TrackingID:      instance.ID,
		MoistureLevel:   "Medium",
		PestPresenceSet: true,
	})
	if err == nil {
		t.Fatal("Expected not found for another user's instance")
	}

	var appErr *types.AppError
	if !errors.As(err, &appErr) || appErr.Kind != types.KindNotFound {
		t.Errorf("Expected not_found error, got %v", err)
	}
}

// TestRemoveHealthRecord tests single-record deletion leaves siblings intact
func TestRemoveHealthRecord(t *testing.T) {
	db := setupTestDB(t)
	plants := seedTestCatalog(t, db)

	instance, err := services.TrackPlant(db, testUser, plants[0].ID, "")
	if err != nil {
		t.Fatalf("Failed to track plant: %v", err)
	}

	first, err := services.AddHealthRecord(db, testUser, services.HealthRecordInput{
		TrackingID:      instance.ID,
		MoistureLevel:   "Low",
		PestPresenceSet: true,
	})
	if err != nil {
		t.Fatalf("Failed to add health record: %v", err)
	}
	if _, err := services.AddHealthRecord(db, testUser, services.HealthRecordInput{
		TrackingID:         instance.ID,
		MoistureLevel:      "High",
		PestPresence:       true,
		PestPresenceSet:    true,
		NutrientDeficiency: "Multiple Deficiencies",
	}); err != nil {
		t.Fatalf("Failed to add health record: %v", err)
	}

	if err := services.RemoveHealthRecord(db, testUser, first.ID); err != nil {
		t.Fatalf("Failed to remove: %v", err)
	}

	records, err := services.ListHealthRecords(db, testUser, instance.ID)
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 remaining record, got %d", len(records))
	}
	if records[0].MoistureLevel != "High" {
		t.Errorf("Expected the sibling to survive, got %q", records[0].MoistureLevel)
	}
}
