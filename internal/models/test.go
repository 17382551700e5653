package models

// Test is the root of the test aggregate. A test together with its questions
// and their answer options is created and read as one unit.
type Test struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	CategoryID  uint   `json:"category_id" gorm:"not null;index" validate:"required"`
	Title       string `json:"title" gorm:"not null;size:255" validate:"required,max=255"`
	MaxAttempts int    `json:"max_attempts" gorm:"not null;default:3" validate:"min=1"`

	// Relations
	Category  *Category    `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Questions []Question   `json:"-" gorm:"foreignKey:TestID"`
	Results   []TestResult `json:"-" gorm:"foreignKey:TestID"`
}

type Question struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	TestID uint   `json:"test_id" gorm:"not null;index" validate:"required"`
	Text   string `json:"text" gorm:"type:text;not null" validate:"required"`
	Weight int    `json:"weight" gorm:"not null;default:1" validate:"min=1"`

	// Relations
	Test    *Test          `json:"-" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE"`
	Options []AnswerOption `json:"-" gorm:"foreignKey:QuestionID"`
}

type AnswerOption struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	QuestionID uint   `json:"question_id" gorm:"not null;index" validate:"required"`
	Text       string `json:"text" gorm:"type:text;not null" validate:"required"`
	IsCorrect  bool   `json:"is_correct" gorm:"not null;default:false"`

	// Relations
	Question *Question `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

func (Test) TableName() string {
	return "tests"
}

func (Question) TableName() string {
	return "questions"
}

func (AnswerOption) TableName() string {
	return "answer_options"
}
