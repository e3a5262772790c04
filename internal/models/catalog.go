package models

import (
	"time"
)

// CatalogPlant is reference data maintained by the catalog importer.
// The API never mutates these rows on behalf of a user.
type CatalogPlant struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string    `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Category          string    `gorm:"size:64;index" json:"category"`
	SoilType          string    `gorm:"size:64;index" json:"soil_type"`
	Climate           string    `gorm:"size:64;index" json:"climate"`
	WateringSchedule  string    `gorm:"size:512" json:"watering_schedule"`
	FertilizationPlan string    `gorm:"size:512" json:"fertilization_plan"`
	PestControl       string    `gorm:"size:512" json:"pest_control"`
	CareInstructions  string    `gorm:"type:text" json:"care_instructions"`
	ImageURL          string    `gorm:"size:512" json:"image_url,omitempty"`
	Attributes        JSON      `gorm:"type:json" json:"attributes,omitempty"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
}

// Region maps a location to its typical climate and soil, and is the source
// of the locations list in the taxonomy endpoint.
type Region struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Location string `gorm:"uniqueIndex;size:255;not null" json:"location"`
	Climate  string `gorm:"size:64;not null" json:"climate"`
	SoilType string `gorm:"size:64;not null" json:"soil_type"`
}

// TableName overrides the table name for CatalogPlant
func (CatalogPlant) TableName() string {
	return "catalog_plants"
}

// TableName overrides the table name for Region
func (Region) TableName() string {
	return "regions"
}
