package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/plantcare/internal/utils"
	"github.com/greenloop/plantcare/internal/weather"
)

// WeatherHandler proxies the upstream weather provider
type WeatherHandler struct {
	Provider *weather.Provider
}

// GetWeather handles GET /api/weather
// @Summary Get current weather
// @Description Get the current weather snapshot for a location. Returns 404 when the provider has no data for it.
// @Tags Weather
// @Produce json
// @Param location query string true "Location"
// @Success 200 {object} weather.Snapshot
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /weather [get]
func (h *WeatherHandler) GetWeather(c *fiber.Ctx) error {
	snapshot, err := h.Provider.Fetch(c.Context(), c.Query("location"))
	if err != nil {
		return utils.AppErrorResponse(c, err, "getWeather")
	}

	return c.Status(fiber.StatusOK).JSON(snapshot)
}
