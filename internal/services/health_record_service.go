package services

import (
	"errors"
	"time"

	"github.com/greenloop/plantcare/internal/models"
	"github.com/greenloop/plantcare/internal/types"
	"gorm.io/gorm"
)

// HealthRecordInput carries a health observation before validation.
type HealthRecordInput struct {
	TrackingID         string
	MoistureLevel      string
	PestPresence       bool
	PestPresenceSet    bool
	NutrientDeficiency string
}

// Validate enforces the required-field rules without touching the database.
func (in *HealthRecordInput) Validate() error {
	if in.TrackingID == "" {
		return types.NewValidation("tracking_id is required")
	}
	if in.MoistureLevel == "" {
		return types.NewValidation("moisture_level is required")
	}
	if !models.MoistureLevel(in.MoistureLevel).Valid() {
		return types.NewValidation("moisture_level must be Low, Medium, or High")
	}
	if !in.PestPresenceSet {
		return types.NewValidation("pest_presence is required")
	}
	if in.NutrientDeficiency != "" && !models.NutrientDeficiency(in.NutrientDeficiency).Valid() {
		return types.NewValidation("nutrient_deficiency is not a recognized value")
	}
	return nil
}

// AddHealthRecord validates the input, verifies ownership, and records the
// observation. An omitted deficiency defaults to "None".
func AddHealthRecord(db *gorm.DB, userID string, in HealthRecordInput) (*models.HealthRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := findOwnedInstance(db, userID, in.TrackingID); err != nil {
		return nil, err
	}

	deficiency := models.NutrientDeficiency(in.NutrientDeficiency)
	if deficiency == "" {
		deficiency = models.DeficiencyNone
	}

	record := models.HealthRecord{
		TrackingID:         in.TrackingID,
		MoistureLevel:      models.MoistureLevel(in.MoistureLevel),
		PestPresence:       in.PestPresence,
		NutrientDeficiency: deficiency,
		RecordedAt:         time.Now().UTC(),
	}
	if err := db.Create(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// ListHealthRecords returns health observations for one of the caller's
// instances, newest first.
func ListHealthRecords(db *gorm.DB, userID, trackingID string) ([]models.HealthRecord, error) {
	if _, err := findOwnedInstance(db, userID, trackingID); err != nil {
		return nil, err
	}

	var records []models.HealthRecord
	err := db.Where("tracking_id = ?", trackingID).
		Order("recorded_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []models.HealthRecord{}
	}
	return records, nil
}

// RemoveHealthRecord deletes a single record, leaving siblings and the parent
// instance untouched.
func RemoveHealthRecord(db *gorm.DB, userID string, recordID uint64) error {
	var record models.HealthRecord
	err := db.Joins("JOIN tracked_plants ON tracked_plants.id = health_records.tracking_id").
		Where("health_records.id = ? AND tracked_plants.user_id = ?", recordID, userID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NewNotFound("Health record not found")
		}
		return err
	}

	return db.Delete(&models.HealthRecord{}, record.ID).Error
}
