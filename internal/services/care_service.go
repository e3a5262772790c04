// care_service.go
//
// Plant care data service for the Greenloop gardening dashboard.
// Copyright (c) 2026 Greenloop Labs
//
// This file is part of plantcare.
// plantcare is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// plantcare is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.

package services

import (
	"errors"

	"github.com/greenloop/plantcare/internal/models"
	"gorm.io/gorm"
)

// Taxonomy is the valid option sets the dashboard dropdowns are built from.
type Taxonomy struct {
	Locations []string `json:"locations"`
	Climates  []string `json:"climates"`
	SoilTypes []string `json:"soilTypes"`
}

// RecommendationQuery narrows the recommendation search. Empty fields are
// not applied as constraints.
type RecommendationQuery struct {
	Plant    string
	Location string
	Climate  string
	SoilType string
}

// Recommendation is one care row for the dashboard table. The weather note
// is derived per request by the consumer and never persisted here.
type Recommendation struct {
	PlantName         string `json:"plant_name"`
	WateringSchedule  string `json:"watering_schedule"`
	FertilizationPlan string `json:"fertilization_plan"`
	PestControl       string `json:"pest_control"`
}

// GetTaxonomy returns the distinct locations, climates, and soil types.
// Locations come from the regions table; climates and soil types from the
// catalog so the filter options always have at least one matching plant.
func GetTaxonomy(db *gorm.DB) (*Taxonomy, error) {
	t := &Taxonomy{
		Locations: []string{},
		Climates:  []string{},
		SoilTypes: []string{},
	}

	if err := db.Model(&models.Region{}).
		Distinct("location").Order("location").
		Pluck("location", &t.Locations).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.CatalogPlant{}).
		Distinct("climate").Order("climate").
		Pluck("climate", &t.Climates).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.CatalogPlant{}).
		Distinct("soil_type").Order("soil_type").
		Pluck("soil_type", &t.SoilTypes).Error; err != nil {
		return nil, err
	}

	return t, nil
}

// AutoSuggest narrows catalog plants to those viable for the full
// (location, climate, soil type) triple. A partial triple intentionally
// yields no suggestions rather than an over-broad set. A location with a
// known region acts as a viability check: when the chosen climate or soil
// type contradicts what actually holds there, nothing is suggested. Unknown
// locations are free entry and constrain on climate and soil alone.
func AutoSuggest(db *gorm.DB, location, climate, soilType string) ([]string, error) {
	if location == "" || climate == "" || soilType == "" {
		return []string{}, nil
	}

	var region models.Region
	err := db.Where("location = ?", location).First(&region).Error
	if err == nil {
		if region.Climate != climate || region.SoilType != soilType {
			return []string{}, nil
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	names := []string{}
	if err := db.Model(&models.CatalogPlant{}).
		Where("climate = ? AND soil_type = ?", climate, soilType).
		Order("name").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}

	return names, nil
}

// GetRecommendations resolves a recommendation query against the catalog.
// Only non-empty fields constrain the search; a location with a known region
// substitutes that region's climate when the caller picked none. An empty
// result is a valid outcome, not an error.
func GetRecommendations(db *gorm.DB, q RecommendationQuery) ([]Recommendation, error) {
	climate := q.Climate
	if climate == "" && q.Location != "" {
		var region models.Region
		err := db.Where("location = ?", q.Location).First(&region).Error
		if err == nil {
			climate = region.Climate
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	query := db.Model(&models.CatalogPlant{})
	if q.Plant != "" {
		query = query.Where("name = ?", q.Plant)
	}
	if climate != "" {
		query = query.Where("climate = ?", climate)
	}
	if q.SoilType != "" {
		query = query.Where("soil_type = ?", q.SoilType)
	}

	var plants []models.CatalogPlant
	if err := query.Order("name").Find(&plants).Error; err != nil {
		return nil, err
	}

	results := make([]Recommendation, 0, len(plants))
	for _, p := range plants {
		results = append(results, Recommendation{
			PlantName:         p.Name,
			WateringSchedule:  p.WateringSchedule,
			FertilizationPlan: p.FertilizationPlan,
			PestControl:       p.PestControl,
		})
	}

	return results, nil
}

// SearchPlants filters the catalog. Name is a substring match; category,
// soil type, and climate are exact. Empty fields are skipped entirely so an
// empty form returns the full listing instead of matching on empty strings.
func SearchPlants(db *gorm.DB, name, category, soilType, climate string) ([]models.CatalogPlant, error) {
	query := db.Model(&models.CatalogPlant{})
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if soilType != "" {
		query = query.Where("soil_type = ?", soilType)
	}
	if climate != "" {
		query = query.Where("climate = ?", climate)
	}

	var plants []models.CatalogPlant
	if err := query.Order("name").Find(&plants).Error; err != nil {
		return nil, err
	}

	if plants == nil {
		plants = []models.CatalogPlant{}
	}
	return plants, nil
}

// ListPlants returns the full catalog.
func ListPlants(db *gorm.DB) ([]models.CatalogPlant, error) {
	return SearchPlants(db, "", "", "", "")
}
