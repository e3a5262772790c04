package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/plantcare/internal/services"
	"github.com/greenloop/plantcare/internal/utils"
	"gorm.io/gorm"
)

// PlantHandler handles catalog routes
type PlantHandler struct {
	DB *gorm.DB
}

// ListPlants handles GET /api/plants
// @Summary List catalog plants
// @Description Get the full plant catalog
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.CatalogPlant
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /plants [get]
func (h *PlantHandler) ListPlants(c *fiber.Ctx) error {
	plants, err := services.ListPlants(h.DB)
	if err != nil {
		return utils.AppErrorResponse(c, err, "listPlants")
	}

	return c.Status(fiber.StatusOK).JSON(plants)
}

// SearchPlants handles GET /api/plants/search
// @Summary Search catalog plants
// @Description Filter the catalog by name, category, soil type, and climate. Empty filters are ignored.
// @Tags Catalog
// @Produce json
// @Param name query string false "Substring name match"
// @Param category query string false "Exact category"
// @Param soil_type query string false "Exact soil type"
// @Param climate query string false "Exact climate"
// @Success 200 {array} models.CatalogPlant
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /plants/search [get]
func (h *PlantHandler) SearchPlants(c *fiber.Ctx) error {
	plants, err := services.SearchPlants(
		h.DB,
		c.Query("name"),
		c.Query("category"),
		c.Query("soil_type"),
		c.Query("climate"),
	)
	if err != nil {
		return utils.AppErrorResponse(c, err, "searchPlants")
	}

	return c.Status(fiber.StatusOK).JSON(plants)
}
