package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/learnspace/content-service/internal/models"
	"github.com/learnspace/content-service/internal/repositories"
	"github.com/learnspace/content-service/internal/utils"
	"github.com/learnspace/content-service/internal/validator"
)

// ImportExportService moves test content in and out of the service in bulk.
type ImportExportService struct {
	repo      repositories.Repository
	validator *validator.Validator
	logger    utils.Logger
	tests     *TestService
}

func NewImportExportService(repo repositories.Repository, v *validator.Validator, logger utils.Logger, tests *TestService) *ImportExportService {
	return &ImportExportService{
		repo:      repo,
		validator: v,
		logger:    logger,
		tests:     tests,
	}
}

// ExportCategoryTestsJSON renders every test in a category as full aggregate
// documents.
func (s *ImportExportService) ExportCategoryTestsJSON(ctx context.Context, categoryID uint) ([]byte, error) {
	aggregates, err := s.loadCategoryAggregates(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(aggregates, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export: %w", err)
	}
	return data, nil
}

// ExportCategoryTestsXLSX renders every test in a category as a spreadsheet
// with one row per answer option.
func (s *ImportExportService) ExportCategoryTestsXLSX(ctx context.Context, categoryID uint) (*bytes.Buffer, error) {
	aggregates, err := s.loadCategoryAggregates(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Tests"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headers := []string{"Test ID", "Test Title", "Max Attempts", "Question ID", "Question", "Weight", "Option ID", "Option", "Correct"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	row := 2
	for _, t := range aggregates {
		for _, q := range t.Questions {
			if len(q.Options) == 0 {
				if err := writeExportRow(f, sheet, row, t, &q, nil); err != nil {
					return nil, err
				}
				row++
				continue
			}
			for i := range q.Options {
				if err := writeExportRow(f, sheet, row, t, &q, &q.Options[i]); err != nil {
					return nil, err
				}
				row++
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func writeExportRow(f *excelize.File, sheet string, row int, t *TestFullResponse, q *QuestionFullResponse, o *OptionResponse) error {
	values := []interface{}{t.ID, t.Title, t.MaxAttempts, q.ID, q.Text, q.Weight}
	if o != nil {
		values = append(values, o.ID, o.Text, o.IsCorrect)
	}
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write cell: %w", err)
		}
	}
	return nil
}

func (s *ImportExportService) loadCategoryAggregates(ctx context.Context, categoryID uint) ([]*TestFullResponse, error) {
	exists, err := s.repo.Category().Exists(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return nil, ErrCategoryNotFound
	}

	tests, err := s.repo.Test().ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tests: %w", err)
	}

	aggregates := make([]*TestFullResponse, 0, len(tests))
	for _, t := range tests {
		full, err := s.tests.loadFull(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, full)
	}
	return aggregates, nil
}

// ImportTests bulk-creates flat test rows from a JSON payload. The whole
// batch succeeds or fails together.
func (s *ImportExportService) ImportTests(ctx context.Context, payload []byte) ([]models.Test, error) {
	var items []validator.TestImportItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, NewBusinessRuleError("import_format", "payload is not a JSON array of tests")
	}
	if len(items) == 0 {
		return []models.Test{}, nil
	}

	tests := make([]*models.Test, 0, len(items))
	for _, item := range items {
		if errs := s.validator.Validate(&item); len(errs) > 0 {
			return nil, errs
		}

		exists, err := s.repo.Category().Exists(ctx, item.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		if !exists {
			return nil, NewReferenceError("category", item.CategoryID)
		}

		t := &models.Test{
			CategoryID:  item.CategoryID,
			Title:       item.Title,
			MaxAttempts: defaultMaxAttempts,
		}
		if item.MaxAttempts != nil {
			t.MaxAttempts = *item.MaxAttempts
		}
		tests = append(tests, t)
	}

	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		return txRepo.Test().CreateBatch(ctx, tests)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import tests: %w", err)
	}

	s.logger.Info("Tests imported", "count", len(tests))

	out := make([]models.Test, 0, len(tests))
	for _, t := range tests {
		out = append(out, *t)
	}
	return out, nil
}
