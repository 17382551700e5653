package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/learnspace/content-service/internal/validator"
)

func TestImportTests(t *testing.T) {
	env := newTestEnv()
	category := env.repo.seedCategory("Math", nil)

	payload, _ := json.Marshal([]validator.TestImportItem{
		{CategoryID: category.ID, Title: "Imported A"},
		{CategoryID: category.ID, Title: "Imported B", MaxAttempts: intPtr(2)},
	})

	imported, err := env.services.ImportExport.ImportTests(context.Background(), payload)
	if err != nil {
		t.Fatalf("ImportTests failed: %v", err)
	}
	if len(imported) != 2 {
		t.Fatalf("expected 2 tests, got %d", len(imported))
	}
	if imported[0].MaxAttempts != 3 {
		t.Fatalf("expected default max_attempts 3, got %d", imported[0].MaxAttempts)
	}
	if imported[1].MaxAttempts != 2 {
		t.Fatalf("expected max_attempts 2, got %d", imported[1].MaxAttempts)
	}
	if len(env.repo.store.tests) != 2 {
		t.Fatalf("expected 2 persisted tests, got %d", len(env.repo.store.tests))
	}
}

func TestImportTestsRejectsUnknownCategory(t *testing.T) {
	env := newTestEnv()
	category := env.repo.seedCategory("Math", nil)

	payload, _ := json.Marshal([]validator.TestImportItem{
		{CategoryID: category.ID, Title: "OK"},
		{CategoryID: 88, Title: "Bad"},
	})

	_, err := env.services.ImportExport.ImportTests(context.Background(), payload)
	var refErr *ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected *ReferenceError, got %T: %v", err, err)
	}
	if len(env.repo.store.tests) != 0 {
		t.Fatal("partial import must not persist anything")
	}
}

func TestImportTestsBadPayload(t *testing.T) {
	env := newTestEnv()

	_, err := env.services.ImportExport.ImportTests(context.Background(), []byte(`{"not":"an array"}`))
	var bizErr *BusinessRuleError
	if !errors.As(err, &bizErr) {
		t.Fatalf("expected *BusinessRuleError, got %T: %v", err, err)
	}
}

func TestExportCategoryTestsJSON(t *testing.T) {
	env := newTestEnv()
	category := env.repo.seedCategory("Math", nil)

	_, err := env.services.Test.CreateFull(context.Background(), &validator.TestFullCreateRequest{
		CategoryID: category.ID,
		Title:      "Quiz",
		Questions: []validator.QuestionNestedCreate{
			{Text: "q1", Options: []validator.OptionNestedCreate{{Text: "a", IsCorrect: boolPtr(true)}}},
		},
	})
	if err != nil {
		t.Fatalf("CreateFull failed: %v", err)
	}

	data, err := env.services.ImportExport.ExportCategoryTestsJSON(context.Background(), category.ID)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var exported []TestFullResponse
	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(exported) != 1 || exported[0].Title != "Quiz" {
		t.Fatalf("unexpected export: %+v", exported)
	}
	if len(exported[0].Questions) != 1 || len(exported[0].Questions[0].Options) != 1 {
		t.Fatalf("aggregate not fully exported: %+v", exported[0])
	}
}

func TestExportCategoryTestsXLSX(t *testing.T) {
	env := newTestEnv()
	category := env.repo.seedCategory("Math", nil)

	_, err := env.services.Test.CreateFull(context.Background(), &validator.TestFullCreateRequest{
		CategoryID: category.ID,
		Title:      "Quiz",
		Questions: []validator.QuestionNestedCreate{
			{Text: "q1", Options: []validator.OptionNestedCreate{{Text: "a"}, {Text: "b"}}},
		},
	})
	if err != nil {
		t.Fatalf("CreateFull failed: %v", err)
	}

	buf, err := env.services.ImportExport.ExportCategoryTestsXLSX(context.Background(), category.ID)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("export is not a valid workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Tests")
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	// header plus one row per option
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "Test ID" {
		t.Fatalf("unexpected header row: %+v", rows[0])
	}
	if rows[1][1] != "Quiz" {
		t.Fatalf("unexpected data row: %+v", rows[1])
	}
}

func TestExportUnknownCategory(t *testing.T) {
	env := newTestEnv()

	_, err := env.services.ImportExport.ExportCategoryTestsJSON(context.Background(), 55)
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
