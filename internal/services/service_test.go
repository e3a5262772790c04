package services_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/greenloop/plantcare/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testUser  = "6fa459ea-ee8a-3ca4-894e-db77e160355e"
	otherUser = "7fa459ea-ee8a-3ca4-894e-db77e160355f"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Auto-migrate models
	err = db.AutoMigrate(
		&models.CatalogPlant{},
		&models.Region{},
		&models.TrackedPlant{},
		&models.GrowthLog{},
		&models.HealthRecord{},
		&models.UserProfile{},
		&models.Article{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// seedTestCatalog inserts a small catalog and region set
func seedTestCatalog(t *testing.T, db *gorm.DB) []models.CatalogPlant {
	plants := []models.CatalogPlant{
		{
			Name:              "Tomato",
			Category:          "Vegetable",
			SoilType:          "Loamy",
			Climate:           "Tropical",
			WateringSchedule:  "Every 2 days",
			FertilizationPlan: "Every 2 weeks",
			PestControl:       "Neem oil spray",
		},
		{
			Name:              "Kale",
			Category:          "Vegetable",
			SoilType:          "Loamy",
			Climate:           "Temperate",
			WateringSchedule:  "Every 3 days",
			FertilizationPlan: "Monthly compost",
			PestControl:       "Row covers",
		},
		{
			Name:              "Banana",
			Category:          "Fruit",
			SoilType:          "Loamy",
			Climate:           "Tropical",
			WateringSchedule:  "Daily in dry season",
			FertilizationPlan: "Monthly potassium feed",
			PestControl:       "Remove affected leaves",
		},
	}
	if err := db.Create(&plants).Error; err != nil {
		t.Fatalf("Failed to seed catalog: %v", err)
	}

	regions := []models.Region{
		{Location: "Nairobi", Climate: "Tropical", SoilType: "Loamy"},
		{Location: "Oslo", Climate: "Temperate", SoilType: "Clay"},
	}
	if err := db.Create(&regions).Error; err != nil {
		t.Fatalf("Failed to seed regions: %v", err)
	}

	return plants
}
