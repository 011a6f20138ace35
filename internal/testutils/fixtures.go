package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kb-backend/internal/attachment"
	articlemodel "kb-backend/internal/model/article"
	categorymodel "kb-backend/internal/model/category"
)

// CreateTestCategory creates a test category with a unique name
func CreateTestCategory(db *gorm.DB, opts ...CategoryOption) *categorymodel.Category {
	uniqueID := uuid.New().String()

	cat := &categorymodel.Category{
		Name:        fmt.Sprintf("test_category_%s", uniqueID),
		Description: "Test category description",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	for _, opt := range opts {
		opt(cat)
	}

	if err := db.Create(cat).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test category: %v", err))
	}

	return cat
}

// CategoryOption configures test category
type CategoryOption func(*categorymodel.Category)

// WithCategoryName sets the category name
func WithCategoryName(name string) CategoryOption {
	return func(c *categorymodel.Category) {
		c.Name = name
	}
}

// CreateTestArticle creates a test article
func CreateTestArticle(db *gorm.DB, categoryID uint, opts ...ArticleOption) *articlemodel.Article {
	uniqueID := uuid.New().String()

	art := &articlemodel.Article{
		Title:      fmt.Sprintf("Test Article %s", uniqueID),
		Content:    "<p>test content</p>",
		CategoryID: categoryID,
		Files:      attachment.Marshal(nil),
		Images:     attachment.Marshal(nil),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	for _, opt := range opts {
		opt(art)
	}

	if err := db.Create(art).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test article: %v", err))
	}

	return art
}

// ArticleOption configures test article
type ArticleOption func(*articlemodel.Article)

// WithTitle sets the article title
func WithTitle(title string) ArticleOption {
	return func(a *articlemodel.Article) {
		a.Title = title
	}
}

// WithContent sets the article content
func WithContent(content string) ArticleOption {
	return func(a *articlemodel.Article) {
		a.Content = content
	}
}

// WithFiles sets the files attachment array
func WithFiles(files []attachment.Attachment) ArticleOption {
	return func(a *articlemodel.Article) {
		a.Files = attachment.Marshal(files)
	}
}

// WithImages sets the images attachment array
func WithImages(images []attachment.Attachment) ArticleOption {
	return func(a *articlemodel.Article) {
		a.Images = attachment.Marshal(images)
	}
}
