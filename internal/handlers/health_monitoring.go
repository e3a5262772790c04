package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/plantcare/internal/services"
	"github.com/greenloop/plantcare/internal/types"
	"github.com/greenloop/plantcare/internal/utils"
	"gorm.io/gorm"
)

// HealthMonitoringHandler handles health record routes
type HealthMonitoringHandler struct {
	DB *gorm.DB
}

// healthRecordBody accepts pest_presence as a bool or as the "Yes"/"No"
// strings the dashboard form submits.
type healthRecordBody struct {
	TrackingID         string          `json:"tracking_id"`
	MoistureLevel      string          `json:"moisture_level"`
	PestPresence       *types.FlexBool `json:"pest_presence"`
	NutrientDeficiency string          `json:"nutrient_deficiency"`
}

// AddHealthRecord handles POST /api/health-monitoring/add
// @Summary Add a health record
// @Description Record a health observation for a tracked plant.
// @Tags HealthMonitoring
// @Accept json
// @Produce json
// @Param body body handlers.healthRecordBody true "Health observation"
// @Success 201 {object} models.HealthRecord
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /health-monitoring/add [post]
func (h *HealthMonitoringHandler) AddHealthRecord(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, "addHealthRecord")
	}

	var body healthRecordBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.KindValidation)
	}

	in := services.HealthRecordInput{
		TrackingID:         body.TrackingID,
		MoistureLevel:      body.MoistureLevel,
		NutrientDeficiency: body.NutrientDeficiency,
	}
	if body.PestPresence != nil {
		in.PestPresence = body.PestPresence.Bool()
		in.PestPresenceSet = true
	}

	record, err := services.AddHealthRecord(h.DB, userID, in)
	if err != nil {
		return utils.AppErrorResponse(c, err, "addHealthRecord")
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// ListHealthRecords handles GET /api/health-monitoring/:trackingId
// @Summary List health records
// @Description Get health observations for one of the caller's tracked plants, newest first.
// @Tags HealthMonitoring
// @Produce json
// @Param trackingId path string true "Tracking instance id"
// @Success 200 {array} models.HealthRecord
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /health-monitoring/{trackingId} [get]
func (h *HealthMonitoringHandler) ListHealthRecords(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, "listHealthRecords")
	}

	records, err := services.ListHealthRecords(h.DB, userID, c.Params("trackingId"))
	if err != nil {
		return utils.AppErrorResponse(c, err, "listHealthRecords")
	}

	return c.Status(fiber.StatusOK).JSON(records)
}

// RemoveHealthRecord handles DELETE /api/health-monitoring/remove/:id
// @Summary Remove a health record
// @Description Delete a single health observation. Siblings and the tracked plant are unaffected.
// @Tags HealthMonitoring
// @Produce json
// @Param id path int true "Health record id"
// @Success 200 {object} utils.DeleteSuccessResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /health-monitoring/remove/{id} [delete]
func (h *HealthMonitoringHandler) RemoveHealthRecord(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, "removeHealthRecord")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return utils.AppErrorResponse(c, err, "removeHealthRecord")
	}

	if err := services.RemoveHealthRecord(h.DB, userID, id); err != nil {
		return utils.AppErrorResponse(c, err, "removeHealthRecord")
	}

	return utils.DeleteSuccessResponse(c, 1)
}
