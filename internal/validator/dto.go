package validator

// Request DTOs for every write surface. Optional fields with documented
// defaults are pointers: absent means "apply the default", which happens in
// the service core, not upstream.

// ===== AUTH =====

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

// ===== CATEGORIES =====

type CategoryCreateRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	ParentID *uint  `json:"parent_id"`
}

type CategoryUpdateRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=255"`
	ParentID *uint   `json:"parent_id"`
}

// ===== ARTICLES / MEDIA =====

type ArticleCreateRequest struct {
	CategoryID  uint   `json:"category_id" validate:"required"`
	Title       string `json:"title" validate:"required,max=255"`
	Content     string `json:"content" validate:"required"`
	ContentType string `json:"content_type" validate:"required,oneof=markdown html"`
}

type ArticleUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content     *string `json:"content" validate:"omitempty,min=1"`
	ContentType *string `json:"content_type" validate:"omitempty,oneof=markdown html"`
	CategoryID  *uint   `json:"category_id"`
}

type MediaCreateRequest struct {
	ArticleID uint   `json:"article_id" validate:"required"`
	MediaType string `json:"media_type" validate:"required,oneof=svg png webm"`
	URL       string `json:"url" validate:"required,max=500"`
	SortOrder *int   `json:"sort_order" validate:"omitempty,min=0"`
}

// ===== TESTS =====

type TestCreateRequest struct {
	CategoryID  uint   `json:"category_id" validate:"required"`
	Title       string `json:"title" validate:"required,max=255"`
	MaxAttempts *int   `json:"max_attempts" validate:"omitempty,min=1"`
}

type TestUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	MaxAttempts *int    `json:"max_attempts" validate:"omitempty,min=1"`
}

// OptionNestedCreate is one answer option inside a full-test payload.
type OptionNestedCreate struct {
	Text      string `json:"text" validate:"required"`
	IsCorrect *bool  `json:"is_correct"`
}

// QuestionNestedCreate is one question inside a full-test payload; options
// may be empty.
type QuestionNestedCreate struct {
	Text    string               `json:"text" validate:"required"`
	Weight  *int                 `json:"weight" validate:"omitempty,min=1"`
	Options []OptionNestedCreate `json:"options" validate:"dive"`
}

// TestFullCreateRequest creates a test together with all of its questions
// and options in one atomic write. Questions may be empty.
type TestFullCreateRequest struct {
	CategoryID  uint                   `json:"category_id" validate:"required"`
	Title       string                 `json:"title" validate:"required,max=255"`
	MaxAttempts *int                   `json:"max_attempts" validate:"omitempty,min=1"`
	Questions   []QuestionNestedCreate `json:"questions" validate:"dive"`
}

type QuestionCreateRequest struct {
	TestID uint   `json:"test_id" validate:"required"`
	Text   string `json:"text" validate:"required"`
	Weight *int   `json:"weight" validate:"omitempty,min=1"`
}

type QuestionUpdateRequest struct {
	Text   *string `json:"text" validate:"omitempty,min=1"`
	Weight *int    `json:"weight" validate:"omitempty,min=1"`
}

type OptionCreateRequest struct {
	QuestionID uint   `json:"question_id" validate:"required"`
	Text       string `json:"text" validate:"required"`
	IsCorrect  *bool  `json:"is_correct"`
}

type OptionUpdateRequest struct {
	Text      *string `json:"text" validate:"omitempty,min=1"`
	IsCorrect *bool   `json:"is_correct"`
}

// ===== USERS =====

type UserCreateRequest struct {
	Username string  `json:"username" validate:"required,max=100"`
	Password string  `json:"password" validate:"required,min=8"`
	RoleID   uint    `json:"role_id" validate:"required"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
}

type UserUpdateRequest struct {
	Password *string `json:"password" validate:"omitempty,min=8"`
	RoleID   *uint   `json:"role_id"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
}

// ===== TRACKING =====

type AssignmentCreateRequest struct {
	CategoryID uint  `json:"category_id" validate:"required"`
	UserID     *uint `json:"user_id"`
	GroupID    *uint `json:"group_id"`
}

type ProgressUpsertRequest struct {
	UserID     uint   `json:"user_id" validate:"required"`
	CategoryID uint   `json:"category_id" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=not_started in_progress done"`
}

type TestAnswerCreate struct {
	QuestionID       uint `json:"question_id" validate:"required"`
	SelectedOptionID uint `json:"selected_option_id" validate:"required"`
}

// TestResultCreateRequest records a result with a score pre-computed by the
// caller; this service does no scoring.
type TestResultCreateRequest struct {
	UserID   uint               `json:"user_id" validate:"required"`
	TestID   uint               `json:"test_id" validate:"required"`
	Score    float64            `json:"score" validate:"omitempty,min=0"`
	MaxScore float64            `json:"max_score" validate:"omitempty,min=0"`
	Passed   bool               `json:"passed"`
	Answers  []TestAnswerCreate `json:"answers" validate:"dive"`
}

// ===== IMPORT/EXPORT =====

type TestImportItem struct {
	CategoryID  uint   `json:"category_id" validate:"required"`
	Title       string `json:"title" validate:"required,max=255"`
	MaxAttempts *int   `json:"max_attempts" validate:"omitempty,min=1"`
}
