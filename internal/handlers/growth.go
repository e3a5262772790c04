package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/plantcare/internal/services"
	"github.com/greenloop/plantcare/internal/types"
	"github.com/greenloop/plantcare/internal/utils"
	"gorm.io/gorm"
)

// GrowthHandler handles growth log routes
type GrowthHandler struct {
	DB *gorm.DB
}

// AddGrowthLog handles POST /api/growth-logs/add
// @Summary Add a growth log
// @Description Record a growth observation for a tracked plant. Multipart form: tracking_id, height_cm, growth_stage, observation_date, optional image.
// @Tags GrowthLogs
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.GrowthLog
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /growth-logs/add [post]
func (h *GrowthHandler) AddGrowthLog(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, "addGrowthLog")
	}

	in := services.GrowthLogInput{
		TrackingID:      c.FormValue("tracking_id"),
		GrowthStage:     c.FormValue("growth_stage"),
		ObservationDate: c.FormValue("observation_date"),
	}

	if raw := c.FormValue("height_cm"); raw != "" {
		height, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.ErrorResponse(c, "height_cm must be a number", fiber.StatusBadRequest, types.KindValidation)
		}
		in.HeightCm = height
		in.HeightSet = true
	}

	// Image upload transport is owned by the media service; only the
	// reference is recorded here.
	if file, err := c.FormFile("image"); err == nil && file != nil {
		in.ImageURL = "/uploads/" + file.Filename
	}

	entry, err := services.AddGrowthLog(h.DB, userID, in)
	if err != nil {
		return utils.AppErrorResponse(c, err, "addGrowthLog")
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// ListGrowthLogs handles GET /api/growth-logs/:trackingId
// @Summary List growth logs
// @Description Get growth observations for one of the caller's tracked plants, newest first.
// @Tags GrowthLogs
// @Produce json
// @Param trackingId path string true "Tracking instance id"
// @Success 200 {array} models.GrowthLog
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /growth-logs/{trackingId} [get]
func (h *GrowthHandler) ListGrowthLogs(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, "listGrowthLogs")
	}

	logs, err := services.ListGrowthLogs(h.DB, userID, c.Params("trackingId"))
	if err != nil {
		return utils.AppErrorResponse(c, err, "listGrowthLogs")
	}

	return c.Status(fiber.StatusOK).JSON(logs)
}

// RemoveGrowthLog handles DELETE /api/growth-logs/remove/:id
// @Summary Remove a growth log
// @Description Delete a single growth observation. Siblings and the tracked plant are unaffected.
// @Tags GrowthLogs
// @Produce json
// @Param id path int true "Growth log id"
// @Success 200 {object} utils.DeleteSuccessResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /growth-logs/remove/{id} [delete]
func (h *GrowthHandler) RemoveGrowthLog(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, "removeGrowthLog")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return utils.AppErrorResponse(c, err, "removeGrowthLog")
	}

	if err := services.RemoveGrowthLog(h.DB, userID, id); err != nil {
		return utils.AppErrorResponse(c, err, "removeGrowthLog")
	}

	return utils.DeleteSuccessResponse(c, 1)
}
