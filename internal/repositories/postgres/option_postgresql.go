package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/learnspace/content-service/internal/models"
	"github.com/learnspace/content-service/internal/repositories"
)

type OptionPostgreSQL struct {
	db *gorm.DB
}

func NewOptionPostgreSQL(db *gorm.DB) repositories.OptionRepository {
	return &OptionPostgreSQL{db: db}
}

func (r *OptionPostgreSQL) Create(ctx context.Context, option *models.AnswerOption) error {
	if err := r.db.WithContext(ctx).Create(option).Error; err != nil {
		return fmt.Errorf("failed to create answer option: %w", err)
	}
	return nil
}

func (r *OptionPostgreSQL) GetByID(ctx context.Context, id uint) (*models.AnswerOption, error) {
	var option models.AnswerOption
	if err := r.db.WithContext(ctx).First(&option, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.NewNotFoundError("answer option", id)
		}
		return nil, fmt.Errorf("failed to get answer option: %w", err)
	}
	return &option, nil
}

func (r *OptionPostgreSQL) Update(ctx context.Context, option *models.AnswerOption) error {
	if err := r.db.WithContext(ctx).Save(option).Error; err != nil {
		return fmt.Errorf("failed to update answer option: %w", err)
	}
	return nil
}

func (r *OptionPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AnswerOption{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete answer option: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.NewNotFoundError("answer option", id)
	}
	return nil
}

func (r *OptionPostgreSQL) ListByQuestion(ctx context.Context, questionID uint) ([]models.AnswerOption, error) {
	var options []models.AnswerOption
	if err := r.db.WithContext(ctx).Where("question_id = ?", questionID).Order("id ASC").Find(&options).Error; err != nil {
		return nil, fmt.Errorf("failed to list options by question: %w", err)
	}
	return options, nil
}

func (r *OptionPostgreSQL) ListByQuestions(ctx context.Context, questionIDs []uint) ([]models.AnswerOption, error) {
	if len(questionIDs) == 0 {
		return []models.AnswerOption{}, nil
	}
	var options []models.AnswerOption
	if err := r.db.WithContext(ctx).Where("question_id IN ?", questionIDs).Order("id ASC").Find(&options).Error; err != nil {
		return nil, fmt.Errorf("failed to list options by questions: %w", err)
	}
	return options, nil
}
