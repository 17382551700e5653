package services

import (
	"context"
	"fmt"

	"github.com/learnspace/content-service/internal/cache"
	"github.com/learnspace/content-service/internal/models"
	"github.com/learnspace/content-service/internal/repositories"
	"github.com/learnspace/content-service/internal/utils"
	"github.com/learnspace/content-service/internal/validator"
)

const treeCacheKey = "tree"

// CategoryService owns the category hierarchy.
type CategoryService struct {
	repo      repositories.Repository
	validator *validator.Validator
	logger    utils.Logger
	cache     *cache.CacheManager
}

func NewCategoryService(repo repositories.Repository, v *validator.Validator, logger utils.Logger, cm *cache.CacheManager) *CategoryService {
	return &CategoryService{
		repo:      repo,
		validator: v,
		logger:    logger,
		cache:     cm,
	}
}

// GetTree returns the full category forest. The rendered tree is cached;
// every category mutation invalidates it.
func (s *CategoryService) GetTree(ctx context.Context) ([]*models.CategoryTreeNode, error) {
	var tree []*models.CategoryTreeNode
	err := s.cache.Category.CacheOrExecute(ctx, treeCacheKey, &tree, cache.CategoryCacheConfig.TTL, func() (interface{}, error) {
		categories, err := s.repo.Category().List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		return BuildCategoryTree(categories)
	})
	if err != nil {
		return nil, err
	}
	if tree == nil {
		tree = []*models.CategoryTreeNode{}
	}
	return tree, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *validator.CategoryCreateRequest) (*models.Category, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if req.ParentID != nil {
		exists, err := s.repo.Category().Exists(ctx, *req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to check parent category: %w", err)
		}
		if !exists {
			return nil, NewReferenceError("category", *req.ParentID)
		}
	}

	category := &models.Category{
		Title:    req.Title,
		ParentID: req.ParentID,
	}

	if err := s.repo.Category().Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.invalidateTree(ctx)

	return category, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.repo.Category().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.Category().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, req *validator.CategoryUpdateRequest) (*models.Category, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}
	if errs := s.validator.GetBusinessValidator().ValidateCategoryParent(id, req.ParentID); len(errs) > 0 {
		return nil, errs
	}

	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		category.Title = *req.Title
	}
	if req.ParentID != nil {
		exists, err := s.repo.Category().Exists(ctx, *req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to check parent category: %w", err)
		}
		if !exists {
			return nil, NewReferenceError("category", *req.ParentID)
		}
		category.ParentID = req.ParentID
	}

	if err := s.repo.Category().Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.invalidateTree(ctx)

	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.repo.Category().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.invalidateTree(ctx)

	return nil
}

func (s *CategoryService) invalidateTree(ctx context.Context) {
	if err := s.cache.Category.Delete(ctx, treeCacheKey); err != nil && err != cache.ErrCacheNotAvailable {
		s.logger.Warn("Failed to invalidate category tree cache", "error", err)
	}
}
