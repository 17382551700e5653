package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/learnspace/content-service/internal/models"
	"github.com/learnspace/content-service/internal/repositories"
)

type ArticlePostgreSQL struct {
	db *gorm.DB
}

func NewArticlePostgreSQL(db *gorm.DB) repositories.ArticleRepository {
	return &ArticlePostgreSQL{db: db}
}

func (r *ArticlePostgreSQL) Create(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

func (r *ArticlePostgreSQL) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.NewNotFoundError("article", id)
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return &article, nil
}

func (r *ArticlePostgreSQL) GetByIDWithMedia(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).
		Preload("MediaItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.NewNotFoundError("article", id)
		}
		return nil, fmt.Errorf("failed to get article with media: %w", err)
	}
	return &article, nil
}

func (r *ArticlePostgreSQL) Update(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Save(article).Error; err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	return nil
}

func (r *ArticlePostgreSQL) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Article{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.NewNotFoundError("article", id)
	}
	return nil
}

func (r *ArticlePostgreSQL) List(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

func (r *ArticlePostgreSQL) ListByCategory(ctx context.Context, categoryID uint) ([]models.Article, error) {
	var articles []models.Article
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id ASC").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to list articles by category: %w", err)
	}
	return articles, nil
}

type MediaPostgreSQL struct {
	db *gorm.DB
}

func NewMediaPostgreSQL(db *gorm.DB) repositories.MediaRepository {
	return &MediaPostgreSQL{db: db}
}

func (r *MediaPostgreSQL) Create(ctx context.Context, media *models.Media) error {
	if err := r.db.WithContext(ctx).Create(media).Error; err != nil {
		return fmt.Errorf("failed to create media: %w", err)
	}
	return nil
}

func (r *MediaPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Media, error) {
	var media models.Media
	if err := r.db.WithContext(ctx).First(&media, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.NewNotFoundError("media", id)
		}
		return nil, fmt.Errorf("failed to get media: %w", err)
	}
	return &media, nil
}

func (r *MediaPostgreSQL) Update(ctx context.Context, media *models.Media) error {
	if err := r.db.WithContext(ctx).Save(media).Error; err != nil {
		return fmt.Errorf("failed to update media: %w", err)
	}
	return nil
}

func (r *MediaPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Media{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete media: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.NewNotFoundError("media", id)
	}
	return nil
}

func (r *MediaPostgreSQL) ListByArticle(ctx context.Context, articleID uint) ([]models.Media, error) {
	var items []models.Media
	if err := r.db.WithContext(ctx).Where("article_id = ?", articleID).Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list media by article: %w", err)
	}
	return items, nil
}
