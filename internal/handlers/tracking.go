package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/plantcare/internal/services"
	"github.com/greenloop/plantcare/internal/types"
	"github.com/greenloop/plantcare/internal/utils"
	"gorm.io/gorm"
)

// TrackingHandler handles plant tracking routes
type TrackingHandler struct {
	DB *gorm.DB
}

// AddTracking handles POST /api/plant-tracking/add
// @Summary Track a plant
// @Description Create a tracking instance for the calling user. Fails with 409 when the plant is already tracked.
// @Tags Tracking
// @Accept json
// @Produce json
// @Param body body object true "plant_id and optional nickname"
// @Success 201 {object} models.TrackedPlant
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /plant-tracking/add [post]
func (h *TrackingHandler) AddTracking(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, "addTracking")
	}

	var body struct {
		PlantID  types.FlexUint64 `json:"plant_id"`
		Nickname string           `json:"nickname"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.KindValidation)
	}
	if body.PlantID == 0 {
		return utils.ErrorResponse(c, "plant_id is required", fiber.StatusBadRequest, types.KindValidation)
	}

	instance, err := services.TrackPlant(h.DB, userID, body.PlantID.Uint64(), body.Nickname)
	if err != nil {
		return utils.AppErrorResponse(c, err, "addTracking")
	}

	return c.Status(fiber.StatusCreated).JSON(instance)
}

// RemoveTracking handles DELETE /api/plant-tracking/remove/:id
// @Summary Untrack a plant
// @Description Remove a tracking instance and cascade-delete its growth logs and health records.
// @Tags Tracking
// @Produce json
// @Param id path string true "Tracking instance id"
// @Success 200 {object} utils.DeleteSuccessResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /plant-tracking/remove/{id} [delete]
func (h *TrackingHandler) RemoveTracking(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, "removeTracking")
	}

	if err := services.UntrackPlant(h.DB, userID, c.Params("id")); err != nil {
		return utils.AppErrorResponse(c, err, "removeTracking")
	}

	return utils.DeleteSuccessResponse(c, 1)
}

// ListTracking handles GET /api/plant-tracking
// @Summary List tracked plants
// @Description Get the calling user's tracking instances joined with plant names.
// @Tags Tracking
// @Produce json
// @Success 200 {array} services.TrackedPlantInfo
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /plant-tracking [get]
func (h *TrackingHandler) ListTracking(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, "listTracking")
	}

	rows, err := services.ListTracked(h.DB, userID)
	if err != nil {
		return utils.AppErrorResponse(c, err, "listTracking")
	}

	return c.Status(fiber.StatusOK).JSON(rows)
}

// ListTrackedForLogs handles GET /api/growth-logs/tracked
// @Summary List tracked plants for log entry
// @Description Get the calling user's tracked plants as id/name pairs, nickname preferred.
// @Tags GrowthLogs
// @Produce json
// @Success 200 {array} object
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /growth-logs/tracked [get]
func (h *TrackingHandler) ListTrackedForLogs(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, "listTrackedForLogs")
	}

	rows, err := services.ListTracked(h.DB, userID)
	if err != nil {
		return utils.AppErrorResponse(c, err, "listTrackedForLogs")
	}

	type option struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	options := make([]option, 0, len(rows))
	for _, row := range rows {
		name := row.PlantName
		if row.Nickname != "" {
			name = row.Nickname
		}
		options = append(options, option{ID: row.ID, Name: name})
	}

	return c.Status(fiber.StatusOK).JSON(options)
}
