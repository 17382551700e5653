package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/learnspace/content-service/internal/models"
	"github.com/learnspace/content-service/internal/repositories"
)

type AssignmentPostgreSQL struct {
	db *gorm.DB
}

func NewAssignmentPostgreSQL(db *gorm.DB) repositories.AssignmentRepository {
	return &AssignmentPostgreSQL{db: db}
}

func (r *AssignmentPostgreSQL) Create(ctx context.Context, assignment *models.Assignment) error {
	if err := r.db.WithContext(ctx).Create(assignment).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

func (r *AssignmentPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.WithContext(ctx).First(&assignment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.NewNotFoundError("assignment", id)
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return &assignment, nil
}

func (r *AssignmentPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Assignment{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.NewNotFoundError("assignment", id)
	}
	return nil
}

func (r *AssignmentPostgreSQL) List(ctx context.Context) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

func (r *AssignmentPostgreSQL) ListByUser(ctx context.Context, userID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments by user: %w", err)
	}
	return assignments, nil
}

func (r *AssignmentPostgreSQL) ListByCategory(ctx context.Context, categoryID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id ASC").Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments by category: %w", err)
	}
	return assignments, nil
}

type ProgressPostgreSQL struct {
	db *gorm.DB
}

func NewProgressPostgreSQL(db *gorm.DB) repositories.ProgressRepository {
	return &ProgressPostgreSQL{db: db}
}

// Upsert relies on the (user_id, category_id) unique index; a second write
// for the same pair updates the status in place.
func (r *ProgressPostgreSQL) Upsert(ctx context.Context, progress *models.Progress) error {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(progress).Error; err != nil {
		return fmt.Errorf("failed to upsert progress: %w", err)
	}
	return nil
}

func (r *ProgressPostgreSQL) GetByUserCategory(ctx context.Context, userID, categoryID uint) (*models.Progress, error) {
	var progress models.Progress
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		First(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.NewNotFoundError("progress", 0)
		}
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return &progress, nil
}

func (r *ProgressPostgreSQL) ListByUser(ctx context.Context, userID uint) ([]models.Progress, error) {
	var entries []models.Progress
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list progress by user: %w", err)
	}
	return entries, nil
}

func (r *ProgressPostgreSQL) ListByCategory(ctx context.Context, categoryID uint) ([]models.Progress, error) {
	var entries []models.Progress
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list progress by category: %w", err)
	}
	return entries, nil
}

func (r *ProgressPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Progress{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete progress: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.NewNotFoundError("progress", id)
	}
	return nil
}

type TestResultPostgreSQL struct {
	db *gorm.DB
}

func NewTestResultPostgreSQL(db *gorm.DB) repositories.TestResultRepository {
	return &TestResultPostgreSQL{db: db}
}

func (r *TestResultPostgreSQL) Create(ctx context.Context, result *models.TestResult) error {
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		return fmt.Errorf("failed to create test result: %w", err)
	}
	return nil
}

func (r *TestResultPostgreSQL) GetByID(ctx context.Context, id uint) (*models.TestResult, error) {
	var result models.TestResult
	if err := r.db.WithContext(ctx).First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.NewNotFoundError("test result", id)
		}
		return nil, fmt.Errorf("failed to get test result: %w", err)
	}
	return &result, nil
}

func (r *TestResultPostgreSQL) ListByUser(ctx context.Context, userID uint) ([]models.TestResult, error) {
	var results []models.TestResult
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list test results by user: %w", err)
	}
	return results, nil
}

func (r *TestResultPostgreSQL) ListByTest(ctx context.Context, testID uint) ([]models.TestResult, error) {
	var results []models.TestResult
	if err := r.db.WithContext(ctx).Where("test_id = ?", testID).Order("id ASC").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list test results by test: %w", err)
	}
	return results, nil
}

func (r *TestResultPostgreSQL) CreateAnswers(ctx context.Context, answers []*models.TestAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(answers, 100).Error; err != nil {
		return fmt.Errorf("failed to create test answers: %w", err)
	}
	return nil
}
