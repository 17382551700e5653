package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/learnspace/content-service/internal/models"
	"github.com/learnspace/content-service/internal/repositories"
)

type TestPostgreSQL struct {
	db *gorm.DB
}

func NewTestPostgreSQL(db *gorm.DB) repositories.TestRepository {
	return &TestPostgreSQL{db: db}
}

func (r *TestPostgreSQL) Create(ctx context.Context, test *models.Test) error {
	if err := r.db.WithContext(ctx).Create(test).Error; err != nil {
		return fmt.Errorf("failed to create test: %w", err)
	}
	return nil
}

func (r *TestPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Test, error) {
	var test models.Test
	if err := r.db.WithContext(ctx).First(&test, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.NewNotFoundError("test", id)
		}
		return nil, fmt.Errorf("failed to get test: %w", err)
	}
	return &test, nil
}

func (r *TestPostgreSQL) Update(ctx context.Context, test *models.Test) error {
	if err := r.db.WithContext(ctx).Save(test).Error; err != nil {
		return fmt.Errorf("failed to update test: %w", err)
	}
	return nil
}

func (r *TestPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Test{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete test: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.NewNotFoundError("test", id)
	}
	return nil
}

func (r *TestPostgreSQL) List(ctx context.Context) ([]models.Test, error) {
	var tests []models.Test
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tests).Error; err != nil {
		return nil, fmt.Errorf("failed to list tests: %w", err)
	}
	return tests, nil
}

func (r *TestPostgreSQL) ListByCategory(ctx context.Context, categoryID uint) ([]models.Test, error) {
	var tests []models.Test
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id ASC").Find(&tests).Error; err != nil {
		return nil, fmt.Errorf("failed to list tests by category: %w", err)
	}
	return tests, nil
}

func (r *TestPostgreSQL) CreateBatch(ctx context.Context, tests []*models.Test) error {
	if len(tests) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(tests, 100).Error; err != nil {
		return fmt.Errorf("failed to create tests batch: %w", err)
	}
	return nil
}
