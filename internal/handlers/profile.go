package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/plantcare/internal/services"
	"github.com/greenloop/plantcare/internal/types"
	"github.com/greenloop/plantcare/internal/utils"
	"gorm.io/gorm"
)

// ProfileHandler handles user profile routes
type ProfileHandler struct {
	DB *gorm.DB
}

// GetProfile handles GET /api/users/profile
// @Summary Get profile defaults
// @Description Get the calling user's stored location, climate, and soil type defaults.
// @Tags Users
// @Produce json
// @Success 200 {object} models.UserProfile
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /users/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, "getProfile")
	}

	profile, err := services.GetProfile(h.DB, userID)
	if err != nil {
		return utils.AppErrorResponse(c, err, "getProfile")
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// SetProfile handles PUT /api/users/profile
// @Summary Set profile defaults
// @Description Store the calling user's location, climate, and soil type defaults.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body object true "location, climate, soil_type"
// @Success 200 {object} models.UserProfile
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /users/profile [put]
func (h *ProfileHandler) SetProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, "setProfile")
	}

	var body struct {
		Location string `json:"location"`
		Climate  string `json:"climate"`
		SoilType string `json:"soil_type"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.KindValidation)
	}

	profile, err := services.SetProfile(h.DB, userID, body.Location, body.Climate, body.SoilType)
	if err != nil {
		return utils.AppErrorResponse(c, err, "setProfile")
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}
