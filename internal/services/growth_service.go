package services

import (
	"errors"
	"time"

	"github.com/greenloop/plantcare/internal/models"
	"github.com/greenloop/plantcare/internal/types"
	"gorm.io/gorm"
)

// GrowthLogInput carries a growth observation before validation.
type GrowthLogInput struct {
	TrackingID      string
	HeightCm        float64
	HeightSet       bool
	GrowthStage     string
	ObservationDate string
	ImageURL        string
}

// Validate enforces the required-field and range rules. It never touches the
// database, so a rejected form costs nothing.
func (in *GrowthLogInput) Validate() error {
	if in.TrackingID == "" {
		return types.NewValidation("tracking_id is required")
	}
	if !in.HeightSet {
		return types.NewValidation("height_cm is required")
	}
	if in.HeightCm < 0 {
		return types.NewValidation("height_cm must be a non-negative number")
	}
	if in.GrowthStage == "" {
		return types.NewValidation("growth_stage is required")
	}
	if !models.GrowthStage(in.GrowthStage).Valid() {
		return types.NewValidation("growth_stage is not a recognized stage")
	}
	if in.ObservationDate == "" {
		return types.NewValidation("observation_date is required")
	}
	if _, err := time.Parse("2006-01-02", in.ObservationDate); err != nil {
		return types.NewValidation("observation_date must be YYYY-MM-DD")
	}
	return nil
}

// AddGrowthLog validates the input, verifies the instance belongs to the
// caller, and records the observation.
func AddGrowthLog(db *gorm.DB, userID string, in GrowthLogInput) (*models.GrowthLog, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := findOwnedInstance(db, userID, in.TrackingID); err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", in.ObservationDate)
	entry := models.GrowthLog{
		TrackingID:      in.TrackingID,
		HeightCm:        in.HeightCm,
		GrowthStage:     models.GrowthStage(in.GrowthStage),
		ObservationDate: date,
		ImageURL:        in.ImageURL,
		LoggedAt:        time.Now().UTC(),
	}
	if err := db.Create(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

// ListGrowthLogs returns the observations for one of the caller's instances,
// newest observation first.
func ListGrowthLogs(db *gorm.DB, userID, trackingID string) ([]models.GrowthLog, error) {
	if _, err := findOwnedInstance(db, userID, trackingID); err != nil {
		return nil, err
	}

	var logs []models.GrowthLog
	err := db.Where("tracking_id = ?", trackingID).
		Order("observation_date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	if logs == nil {
		logs = []models.GrowthLog{}
	}
	return logs, nil
}

// RemoveGrowthLog deletes a single observation. Siblings and the parent
// instance are untouched.
func RemoveGrowthLog(db *gorm.DB, userID string, logID uint64) error {
	var entry models.GrowthLog
	err := db.Joins("JOIN tracked_plants ON tracked_plants.id = growth_logs.tracking_id").
		Where("growth_logs.id = ? AND tracked_plants.user_id = ?", logID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NewNotFound("Growth log not found")
		}
		return err
	}

	return db.Delete(&models.GrowthLog{}, entry.ID).Error
}
