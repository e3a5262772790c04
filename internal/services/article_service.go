package services

import (
	"errors"

	"github.com/greenloop/plantcare/internal/models"
	"github.com/greenloop/plantcare/internal/types"
	"gorm.io/gorm"
)

// GetArticle returns one article by id.
func GetArticle(db *gorm.DB, id uint64) (*models.Article, error) {
	var article models.Article
	if err := db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFound("Article not found")
		}
		return nil, err
	}
	return &article, nil
}

// ListArticles returns all articles, newest first.
func ListArticles(db *gorm.DB) ([]models.Article, error) {
	articles := []models.Article{}
	if err := db.Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}
