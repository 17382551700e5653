package models

import "time"

type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressDone       ProgressStatus = "done"
)

// Assignment targets either a single user or a whole group, never both.
type Assignment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	AssignedBy uint      `json:"assigned_by" gorm:"not null;index" validate:"required"`
	CategoryID uint      `json:"category_id" gorm:"not null;index" validate:"required"`
	UserID     *uint     `json:"user_id" gorm:"index"`
	GroupID    *uint     `json:"group_id" gorm:"index"`
	AssignedAt time.Time `json:"assigned_at"`

	// Relations
	Teacher  *User     `json:"-" gorm:"foreignKey:AssignedBy;constraint:OnDelete:RESTRICT"`
	Category *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	User     *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Group    *Group    `json:"-" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// Progress tracks one user's state in one category; (user_id, category_id)
// is unique and writes are upserts.
type Progress struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	UserID     uint           `json:"user_id" gorm:"not null;uniqueIndex:uq_progress_user_category" validate:"required"`
	CategoryID uint           `json:"category_id" gorm:"not null;uniqueIndex:uq_progress_user_category" validate:"required"`
	Status     ProgressStatus `json:"status" gorm:"not null;size:20" validate:"required,oneof=not_started in_progress done"`
	UpdatedAt  time.Time      `json:"updated_at"`

	// Relations
	User     *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Category *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TestResult carries a score pre-computed by the caller; this service only
// records it.
type TestResult struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	UserID   uint      `json:"user_id" gorm:"not null;index" validate:"required"`
	TestID   uint      `json:"test_id" gorm:"not null;index" validate:"required"`
	Score    float64   `json:"score" gorm:"type:numeric(5,2);not null" validate:"min=0"`
	MaxScore float64   `json:"max_score" gorm:"type:numeric(5,2);not null" validate:"min=0"`
	Passed   bool      `json:"passed" gorm:"not null"`
	TakenAt  time.Time `json:"taken_at"`

	// Relations
	User    *User        `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Test    *Test        `json:"-" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE"`
	Answers []TestAnswer `json:"answers,omitempty" gorm:"foreignKey:TestResultID"`
}

type TestAnswer struct {
	ID               uint `json:"id" gorm:"primaryKey"`
	TestResultID     uint `json:"test_result_id" gorm:"not null;index" validate:"required"`
	QuestionID       uint `json:"question_id" gorm:"not null;index" validate:"required"`
	SelectedOptionID uint `json:"selected_option_id" gorm:"not null;index" validate:"required"`

	// Relations
	TestResult     *TestResult   `json:"-" gorm:"foreignKey:TestResultID;constraint:OnDelete:CASCADE"`
	Question       *Question     `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	SelectedOption *AnswerOption `json:"-" gorm:"foreignKey:SelectedOptionID;constraint:OnDelete:CASCADE"`
}

func (Assignment) TableName() string {
	return "assignments"
}

func (Progress) TableName() string {
	return "progress"
}

func (TestResult) TableName() string {
	return "test_results"
}

func (TestAnswer) TableName() string {
	return "test_answers"
}
