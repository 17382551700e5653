package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// BusinessValidator holds rules that tag validation cannot express.
type BusinessValidator struct {
	validate *validator.Validate
}

func NewBusinessValidator(validate *validator.Validate) *BusinessValidator {
	return &BusinessValidator{validate: validate}
}

func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	if err := bv.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateTestFullCreate validates a full-test payload: tag rules plus
// blank-title checks on the nested levels, so nothing reaches the store that
// would die on a constraint mid-transaction.
func (bv *BusinessValidator) ValidateTestFullCreate(req *TestFullCreateRequest) ValidationErrors {
	errs := bv.Validate(req)

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, ValidationError{
			Field:   "title",
			Message: "must not be blank",
			Value:   req.Title,
			Rule:    "business_logic",
		})
	}
	if req.MaxAttempts != nil && *req.MaxAttempts < 1 {
		errs = append(errs, ValidationError{
			Field:   "max_attempts",
			Message: "must be at least 1",
			Value:   *req.MaxAttempts,
			Rule:    "business_logic",
		})
	}

	for _, q := range req.Questions {
		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, ValidationError{
				Field:   "questions.text",
				Message: "question text must not be blank",
				Rule:    "business_logic",
			})
		}
		if q.Weight != nil && *q.Weight < 1 {
			errs = append(errs, ValidationError{
				Field:   "questions.weight",
				Message: "must be at least 1",
				Value:   *q.Weight,
				Rule:    "business_logic",
			})
		}
		for _, o := range q.Options {
			if strings.TrimSpace(o.Text) == "" {
				errs = append(errs, ValidationError{
					Field:   "questions.options.text",
					Message: "option text must not be blank",
					Rule:    "business_logic",
				})
			}
		}
	}

	return errs
}

// ValidateAssignmentCreate enforces the single-target rule: exactly one of
// user_id and group_id must be set.
func (bv *BusinessValidator) ValidateAssignmentCreate(req *AssignmentCreateRequest) ValidationErrors {
	errs := bv.Validate(req)

	hasUser := req.UserID != nil
	hasGroup := req.GroupID != nil
	if hasUser == hasGroup {
		errs = append(errs, ValidationError{
			Field:   "user_id",
			Message: "exactly one of user_id and group_id must be set",
			Rule:    "business_logic",
		})
	}

	return errs
}

// ValidateCategoryParent rejects a category pointing at itself; deeper cycle
// checks happen at tree-build time against the full snapshot.
func (bv *BusinessValidator) ValidateCategoryParent(id uint, parentID *uint) ValidationErrors {
	if parentID != nil && *parentID == id {
		return ValidationErrors{{
			Field:   "parent_id",
			Message: "category cannot be its own parent",
			Value:   *parentID,
			Rule:    "business_logic",
		}}
	}
	return nil
}

// ValidateTestResultCreate checks score consistency on top of tag rules.
func (bv *BusinessValidator) ValidateTestResultCreate(req *TestResultCreateRequest) ValidationErrors {
	errs := bv.Validate(req)

	if req.Score > req.MaxScore {
		errs = append(errs, ValidationError{
			Field:   "score",
			Message: "score cannot exceed max_score",
			Value:   req.Score,
			Rule:    "business_logic",
		})
	}

	return errs
}
