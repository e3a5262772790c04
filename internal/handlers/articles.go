package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/plantcare/internal/services"
	"github.com/greenloop/plantcare/internal/utils"
	"gorm.io/gorm"
)

// ArticleHandler handles editorial content routes
type ArticleHandler struct {
	DB *gorm.DB
}

// ListArticles handles GET /api/articles
// @Summary List articles
// @Description Get all gardening articles, newest first.
// @Tags Articles
// @Produce json
// @Success 200 {array} models.Article
// @Router /articles [get]
func (h *ArticleHandler) ListArticles(c *fiber.Ctx) error {
	articles, err := services.ListArticles(h.DB)
	if err != nil {
		return utils.AppErrorResponse(c, err, "listArticles")
	}

	return c.Status(fiber.StatusOK).JSON(articles)
}

// GetArticle handles GET /api/articles/:id
// @Summary Get an article
// @Description Get one gardening article by id.
// @Tags Articles
// @Produce json
// @Param id path int true "Article id"
// @Success 200 {object} models.Article
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetArticle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.AppErrorResponse(c, err, "getArticle")
	}

	article, err := services.GetArticle(h.DB, id)
	if err != nil {
		return utils.AppErrorResponse(c, err, "getArticle")
	}

	return c.Status(fiber.StatusOK).JSON(article)
}
