package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/plantcare/internal/services"
	"github.com/greenloop/plantcare/internal/utils"
	"gorm.io/gorm"
)

// CareHandler handles taxonomy, auto-suggest, and recommendation routes
type CareHandler struct {
	DB *gorm.DB
}

// GetTaxonomy handles GET /api/plant-care/locations
// @Summary Get filter taxonomy
// @Description Get the valid locations, climates, and soil types for the cascading filters.
// @Tags PlantCare
// @Produce json
// @Success 200 {object} services.Taxonomy
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /plant-care/locations [get]
func (h *CareHandler) GetTaxonomy(c *fiber.Ctx) error {
	taxonomy, err := services.GetTaxonomy(h.DB)
	if err != nil {
		return utils.AppErrorResponse(c, err, "getTaxonomy")
	}

	return c.Status(fiber.StatusOK).JSON(taxonomy)
}

// AutoSuggest handles GET /api/plant-care/auto-suggest
// @Summary Suggest viable plants
// @Description Narrow catalog plants to the (location, climate, soil_type) triple. Any empty member yields an empty list.
// @Tags PlantCare
// @Produce json
// @Param location query string false "Location"
// @Param climate query string false "Climate"
// @Param soil_type query string false "Soil type"
// @Success 200 {array} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /plant-care/auto-suggest [get]
func (h *CareHandler) AutoSuggest(c *fiber.Ctx) error {
	names, err := services.AutoSuggest(
		h.DB,
		c.Query("location"),
		c.Query("climate"),
		c.Query("soil_type"),
	)
	if err != nil {
		return utils.AppErrorResponse(c, err, "autoSuggest")
	}

	return c.Status(fiber.StatusOK).JSON(names)
}

// GetRecommendations handles GET /api/plant-care/recommendations
// @Summary Get care recommendations
// @Description Resolve care recommendations for the query. Empty fields are not applied; an empty array is a valid outcome.
// @Tags PlantCare
// @Produce json
// @Param plant query string false "Plant name"
// @Param location query string false "Location"
// @Param climate query string false "Climate"
// @Param soil_type query string false "Soil type"
// @Success 200 {array} services.Recommendation
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /plant-care/recommendations [get]
func (h *CareHandler) GetRecommendations(c *fiber.Ctx) error {
	if _, err := getUserID(c); err != nil {
		return utils.AppErrorResponse(c, err, "getRecommendations")
	}

	results, err := services.GetRecommendations(h.DB, services.RecommendationQuery{
		Plant:    c.Query("plant"),
		Location: c.Query("location"),
		Climate:  c.Query("climate"),
		SoilType: c.Query("soil_type"),
	})
	if err != nil {
		return utils.AppErrorResponse(c, err, "getRecommendations")
	}

	return c.Status(fiber.StatusOK).JSON(results)
}
