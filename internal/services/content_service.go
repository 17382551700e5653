package services

import (
	"context"
	"fmt"

	"github.com/learnspace/content-service/internal/models"
	"github.com/learnspace/content-service/internal/repositories"
	"github.com/learnspace/content-service/internal/utils"
	"github.com/learnspace/content-service/internal/validator"
)

// ContentService owns articles and their attached media.
type ContentService struct {
	repo      repositories.Repository
	validator *validator.Validator
	logger    utils.Logger
}

func NewContentService(repo repositories.Repository, v *validator.Validator, logger utils.Logger) *ContentService {
	return &ContentService{repo: repo, validator: v, logger: logger}
}

func (s *ContentService) CreateArticle(ctx context.Context, req *validator.ArticleCreateRequest) (*models.Article, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	exists, err := s.repo.Category().Exists(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return nil, NewReferenceError("category", req.CategoryID)
	}

	article := &models.Article{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Content:     req.Content,
		ContentType: models.ContentType(req.ContentType),
	}

	if err := s.repo.Article().Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return article, nil
}

// GetArticle returns the article with its media preloaded in sort order.
func (s *ContentService) GetArticle(ctx context.Context, id uint) (*models.Article, error) {
	article, err := s.repo.Article().GetByIDWithMedia(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}

func (s *ContentService) ListArticles(ctx context.Context) ([]models.Article, error) {
	articles, err := s.repo.Article().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

func (s *ContentService) ListArticlesByCategory(ctx context.Context, categoryID uint) ([]models.Article, error) {
	articles, err := s.repo.Article().ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

func (s *ContentService) UpdateArticle(ctx context.Context, id uint, req *validator.ArticleUpdateRequest) (*models.Article, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	article, err := s.repo.Article().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.ContentType != nil {
		article.ContentType = models.ContentType(*req.ContentType)
	}
	if req.CategoryID != nil {
		exists, err := s.repo.Category().Exists(ctx, *req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		if !exists {
			return nil, NewReferenceError("category", *req.CategoryID)
		}
		article.CategoryID = *req.CategoryID
	}

	if err := s.repo.Article().Update(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	return article, nil
}

func (s *ContentService) DeleteArticle(ctx context.Context, id uint) error {
	if err := s.repo.Article().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}

// ===== MEDIA =====

func (s *ContentService) CreateMedia(ctx context.Context, req *validator.MediaCreateRequest) (*models.Media, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.repo.Article().GetByID(ctx, req.ArticleID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewReferenceError("article", req.ArticleID)
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	media := &models.Media{
		ArticleID: req.ArticleID,
		MediaType: models.MediaType(req.MediaType),
		URL:       req.URL,
	}
	if req.SortOrder != nil {
		media.SortOrder = *req.SortOrder
	}

	if err := s.repo.Media().Create(ctx, media); err != nil {
		return nil, fmt.Errorf("failed to create media: %w", err)
	}

	return media, nil
}

func (s *ContentService) ListMediaByArticle(ctx context.Context, articleID uint) ([]models.Media, error) {
	media, err := s.repo.Media().ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	return media, nil
}

func (s *ContentService) DeleteMedia(ctx context.Context, id uint) error {
	if err := s.repo.Media().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrMediaNotFound
		}
		return fmt.Errorf("failed to delete media: %w", err)
	}
	return nil
}
