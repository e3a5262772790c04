package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GrowthStage is the observed stage of a tracked plant.
type GrowthStage string

const (
	StageSeedling   GrowthStage = "Seedling"
	StageVegetative GrowthStage = "Vegetative"
	StageBudding    GrowthStage = "Budding"
	StageFlowering  GrowthStage = "Flowering"
	StageFruiting   GrowthStage = "Fruiting"
	StageMature     GrowthStage = "Mature"
)

// Valid reports whether s is a known growth stage.
func (s GrowthStage) Valid() bool {
	switch s {
	case StageSeedling, StageVegetative, StageBudding, StageFlowering, StageFruiting, StageMature:
		return true
	}
	return false
}

// MoistureLevel is a coarse soil moisture reading.
type MoistureLevel string

const (
	MoistureLow    MoistureLevel = "Low"
	MoistureMedium MoistureLevel = "Medium"
	MoistureHigh   MoistureLevel = "High"
)

// Valid reports whether m is a known moisture level.
func (m MoistureLevel) Valid() bool {
	switch m {
	case MoistureLow, MoistureMedium, MoistureHigh:
		return true
	}
	return false
}

// NutrientDeficiency names the observed deficiency, "None" included.
type NutrientDeficiency string

const (
	DeficiencyNone       NutrientDeficiency = "None"
	DeficiencyNitrogen   NutrientDeficiency = "Nitrogen Deficiency"
	DeficiencyPhosphorus NutrientDeficiency = "Phosphorus Deficiency"
	DeficiencyPotassium  NutrientDeficiency = "Potassium Deficiency"
	DeficiencyMultiple   NutrientDeficiency = "Multiple Deficiencies"
)

// Valid reports whether n is a known deficiency value.
func (n NutrientDeficiency) Valid() bool {
	switch n {
	case DeficiencyNone, DeficiencyNitrogen, DeficiencyPhosphorus, DeficiencyPotassium, DeficiencyMultiple:
		return true
	}
	return false
}

// TrackedPlant is one user's tracking of one catalog plant. The composite
// unique index enforces at most one active instance per (user, plant);
// removal hard-deletes the row, so re-tracking creates a fresh instance.
type TrackedPlant struct {
	ID        string       `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    string       `gorm:"type:char(36);not null;index:idx_user_plant,unique" json:"user_id"`
	PlantID   uint64       `gorm:"not null;index:idx_user_plant,unique" json:"plant_id"`
	Nickname  string       `gorm:"size:255" json:"nickname,omitempty"`
	DateAdded time.Time    `json:"date_added"`
	Plant     CatalogPlant `gorm:"foreignKey:PlantID" json:"-"`
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (t *TrackedPlant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// GrowthLog is a growth observation owned by exactly one TrackedPlant.
type GrowthLog struct {
	ID              uint64      `gorm:"primaryKey;autoIncrement" json:"id"`
	TrackingID      string      `gorm:"type:char(36);not null;index" json:"tracking_id"`
	HeightCm        float64     `gorm:"not null" json:"height_cm"`
	GrowthStage     GrowthStage `gorm:"size:32;not null" json:"growth_stage"`
	ObservationDate time.Time   `gorm:"not null" json:"observation_date"`
	ImageURL        string      `gorm:"size:512" json:"image_url,omitempty"`
	LoggedAt        time.Time   `json:"logged_at"`
}

// HealthRecord is a health observation owned by exactly one TrackedPlant.
type HealthRecord struct {
	ID                 uint64             `gorm:"primaryKey;autoIncrement" json:"id"`
	TrackingID         string             `gorm:"type:char(36);not null;index" json:"tracking_id"`
	MoistureLevel      MoistureLevel      `gorm:"size:16;not null" json:"moisture_level"`
	PestPresence       bool               `gorm:"not null" json:"pest_presence"`
	NutrientDeficiency NutrientDeficiency `gorm:"size:64;not null;default:None" json:"nutrient_deficiency"`
	RecordedAt         time.Time          `json:"recorded_at"`
}

// UserProfile stores the defaults that seed the recommendation filters.
type UserProfile struct {
	UserID    string    `gorm:"type:char(36);primaryKey" json:"user_id"`
	Location  string    `gorm:"size:255" json:"location"`
	Climate   string    `gorm:"size:64" json:"climate"`
	SoilType  string    `gorm:"size:64" json:"soil_type"`
	UpdatedAt time.Time `json:"-"`
}

// TableName overrides the table name for TrackedPlant
func (TrackedPlant) TableName() string {
	return "tracked_plants"
}

// TableName overrides the table name for GrowthLog
func (GrowthLog) TableName() string {
	return "growth_logs"
}

// TableName overrides the table name for HealthRecord
func (HealthRecord) TableName() string {
	return "health_records"
}

// TableName overrides the table name for UserProfile
func (UserProfile) TableName() string {
	return "user_profiles"
}
