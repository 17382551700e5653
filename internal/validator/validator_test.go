package validator

import "testing"

func TestValidateTestFullCreate(t *testing.T) {
	v := New()
	bv := v.GetBusinessValidator()

	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name    string
		req     TestFullCreateRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: TestFullCreateRequest{
				CategoryID: 1,
				Title:      "Quiz",
				Questions: []QuestionNestedCreate{
					{Text: "q", Options: []OptionNestedCreate{{Text: "a"}}},
				},
			},
		},
		{
			name: "valid without questions",
			req:  TestFullCreateRequest{CategoryID: 1, Title: "Quiz"},
		},
		{
			name:    "missing category",
			req:     TestFullCreateRequest{Title: "Quiz"},
			wantErr: true,
		},
		{
			name:    "blank title",
			req:     TestFullCreateRequest{CategoryID: 1, Title: "  "},
			wantErr: true,
		},
		{
			name: "zero max attempts",
			req: TestFullCreateRequest{
				CategoryID:  1,
				Title:       "Quiz",
				MaxAttempts: intPtr(0),
			},
			wantErr: true,
		},
		{
			name: "zero weight",
			req: TestFullCreateRequest{
				CategoryID: 1,
				Title:      "Quiz",
				Questions:  []QuestionNestedCreate{{Text: "q", Weight: intPtr(0)}},
			},
			wantErr: true,
		},
		{
			name: "option without text",
			req: TestFullCreateRequest{
				CategoryID: 1,
				Title:      "Quiz",
				Questions: []QuestionNestedCreate{
					{Text: "q", Options: []OptionNestedCreate{{Text: ""}}},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := bv.ValidateTestFullCreate(&tt.req)
			if tt.wantErr && len(errs) == 0 {
				t.Fatal("expected validation errors, got none")
			}
			if !tt.wantErr && len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
		})
	}
}

func TestValidateAssignmentCreate(t *testing.T) {
	v := New()
	bv := v.GetBusinessValidator()

	uintPtr := func(n uint) *uint { return &n }

	tests := []struct {
		name    string
		req     AssignmentCreateRequest
		wantErr bool
	}{
		{name: "user target", req: AssignmentCreateRequest{CategoryID: 1, UserID: uintPtr(2)}},
		{name: "group target", req: AssignmentCreateRequest{CategoryID: 1, GroupID: uintPtr(3)}},
		{name: "no target", req: AssignmentCreateRequest{CategoryID: 1}, wantErr: true},
		{
			name:    "both targets",
			req:     AssignmentCreateRequest{CategoryID: 1, UserID: uintPtr(2), GroupID: uintPtr(3)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := bv.ValidateAssignmentCreate(&tt.req)
			if tt.wantErr && len(errs) == 0 {
				t.Fatal("expected validation errors, got none")
			}
			if !tt.wantErr && len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "title", Message: "is required", Rule: "required"},
		{Field: "category_id", Message: "is required", Rule: "required"},
	}

	msg := errs.Error()
	if msg == "" || msg == "validation failed" {
		t.Fatalf("expected detailed message, got %q", msg)
	}
}
