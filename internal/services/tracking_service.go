// tracking_service.go
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
	"strings"
	"time"

	"github.com/greenloop/plantcare/internal/models"
	"github.com/greenloop/plantcare/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TrackedPlantInfo is the list shape the dashboard renders: the instance
// joined with its catalog plant name.
type TrackedPlantInfo struct {
	ID        string    `json:"id"`
	PlantID   uint64    `json:"plant_id"`
	PlantName string    `json:"plant_name"`
	Nickname  string    `json:"nickname,omitempty"`
	DateAdded time.Time `json:"date_added"`
}

// TrackPlant creates a tracking instance for (userID, plantID). At most one
// active instance may exist per pair: a locked existence check catches the
// common case, the composite unique index catches the race, and both surface
// as the same Conflict kind.
func TrackPlant(db *gorm.DB, userID string, plantID uint64, nickname string) (*models.TrackedPlant, error) {
	var instance models.TrackedPlant

	err := db.Transaction(func(tx *gorm.DB) error {
		var plant models.CatalogPlant
		if err := tx.First(&plant, plantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFound("Plant not found in catalog")
			}
			return err
		}

		var existing models.TrackedPlant
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND plant_id = ?", userID, plantID).
			First(&existing).Error
		if err == nil {
			return types.NewConflict("Plant is already being tracked")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		instance = models.TrackedPlant{
			UserID:    userID,
			PlantID:   plantID,
			Nickname:  nickname,
			DateAdded: time.Now().UTC(),
		}
		if err := tx.Create(&instance).Error; err != nil {
			if isDuplicateKeyError(err) {
				return types.NewConflict("Plant is already being tracked")
			}
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &instance, nil
}

// UntrackPlant removes the instance and every growth log and health record
// that references it, in one transaction. No orphaned children survive.
func UntrackPlant(db *gorm.DB, userID, trackingID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var instance models.TrackedPlant
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", trackingID, userID).
			First(&instance).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFound("Tracked plant not found")
			}
			return err
		}

		if err := tx.Where("tracking_id = ?", instance.ID).
			Delete(&models.GrowthLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tracking_id = ?", instance.ID).
			Delete(&models.HealthRecord{}).Error; err != nil {
			return err
		}

		return tx.Delete(&instance).Error
	})
}

// ListTracked returns the caller's tracking instances joined with plant names.
func ListTracked(db *gorm.DB, userID string) ([]TrackedPlantInfo, error) {
	var rows []TrackedPlantInfo

	err := db.Model(&models.TrackedPlant{}).
		Select("tracked_plants.id, tracked_plants.plant_id, catalog_plants.name AS plant_name, tracked_plants.nickname, tracked_plants.date_added").
		Joins("JOIN catalog_plants ON catalog_plants.id = tracked_plants.plant_id").
		Where("tracked_plants.user_id = ?", userID).
		Order("tracked_plants.date_added").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []TrackedPlantInfo{}
	}
	return rows, nil
}

// findOwnedInstance resolves a tracking instance owned by userID, or NotFound.
func findOwnedInstance(tx *gorm.DB, userID, trackingID string) (*models.TrackedPlant, error) {
	var instance models.TrackedPlant
	if err := tx.Where("id = ? AND user_id = ?", trackingID, userID).
		First(&instance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFound("Tracked plant not found")
		}
		return nil, err
	}
	return &instance, nil
}

// isDuplicateKeyError reports whether err is a unique-constraint violation on
// any of the supported dialects.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique failed")
}
