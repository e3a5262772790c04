package services

import (
	"errors"

	"github.com/greenloop/plantcare/internal/models"
	"gorm.io/gorm"
)

// GetProfile returns the stored filter defaults for userID. A user with no
// stored profile gets an empty one rather than an error; the dashboard
// degrades to blank filters.
func GetProfile(db *gorm.DB, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.UserProfile{UserID: userID}, nil
		}
		return nil, err
	}
	return &profile, nil
}

// SetProfile upserts the filter defaults for userID.
func SetProfile(db *gorm.DB, userID, location, climate, soilType string) (*models.UserProfile, error) {
	profile := models.UserProfile{
		UserID:   userID,
		Location: location,
		Climate:  climate,
		SoilType: soilType,
	}

	err := db.Where("user_id = ?", userID).
		Assign(models.UserProfile{Location: location, Climate: climate, SoilType: soilType}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}

	return &profile, nil
}
