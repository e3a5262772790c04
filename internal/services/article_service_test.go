package services_test

import (
	"errors"
	"testing"

	"github.com/greenloop/plantcare/internal/models"
	"github.com/greenloop/plantcare/internal/services"
	"github.com/greenloop/plantcare/internal/types"
)

// TestGetArticle tests the read-by-id path and the not-found kind
func TestGetArticle(t *testing.T) {
	db := setupTestDB(t)

	seeded := models.Article{Title: "Mulching in dry climates", Content: "Mulch retains moisture."}
	if err := db.Create(&seeded).Error; err != nil {
		t.Fatalf("Failed to seed article: %v", err)
	}

	article, err := services.GetArticle(db, seeded.ID)
	if err != nil {
		t.Fatalf("Failed to get article: %v", err)
	}
	if article.Title != "Mulching in dry climates" {
		t.Errorf("Expected seeded article, got %+v", article)
	}

	_, err = services.GetArticle(db, 9999)
	var appErr *types.AppError
	if !errors.As(err, &appErr) || appErr.Kind != types.KindNotFound {
		t.Errorf("Expected not_found for unknown article, got %v", err)
	}
}

// TestListArticlesEmpty tests that no content is an empty slice, not nil
func TestListArticlesEmpty(t *testing.T) {
	db := setupTestDB(t)

	articles, err := services.ListArticles(db)
	if err != nil {
		t.Fatalf("Failed to list articles: %v", err)
	}
	if articles == nil || len(articles) != 0 {
		t.Errorf("Expected empty slice, got %+v", articles)
	}
}
