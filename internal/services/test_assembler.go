package services

import (
	"sort"

	"github.com/learnspace/content-service/internal/models"
)

// Response shapes for the full-test aggregate. These are deliberately not
// the persistence models: every slice field always serializes as a JSON
// array, never null, and no relation fields leak.

type OptionResponse struct {
	ID         uint   `json:"id"`
	QuestionID uint   `json:"question_id"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct"`
}

type QuestionFullResponse struct {
	ID      uint             `json:"id"`
	TestID  uint             `json:"test_id"`
	Text    string           `json:"text"`
	Weight  int              `json:"weight"`
	Options []OptionResponse `json:"options"`
}

type TestFullResponse struct {
	ID          uint                   `json:"id"`
	CategoryID  uint                   `json:"category_id"`
	Title       string                 `json:"title"`
	MaxAttempts int                    `json:"max_attempts"`
	Questions   []QuestionFullResponse `json:"questions"`
}

// assembleTestAggregate stitches a test, its questions and all their options
// into one response. Questions and the options under each question are
// ordered by ascending id regardless of fetch order, so two reads of the
// same data always produce the same document.
func assembleTestAggregate(test *models.Test, questions []models.Question, options []models.AnswerOption) *TestFullResponse {
	byQuestion := make(map[uint][]OptionResponse, len(questions))
	for _, o := range options {
		byQuestion[o.QuestionID] = append(byQuestion[o.QuestionID], OptionResponse{
			ID:         o.ID,
			QuestionID: o.QuestionID,
			Text:       o.Text,
			IsCorrect:  o.IsCorrect,
		})
	}

	qs := make([]QuestionFullResponse, 0, len(questions))
	for _, q := range questions {
		opts := byQuestion[q.ID]
		if opts == nil {
			opts = []OptionResponse{}
		}
		sort.Slice(opts, func(i, j int) bool { return opts[i].ID < opts[j].ID })
		qs = append(qs, QuestionFullResponse{
			ID:      q.ID,
			TestID:  q.TestID,
			Text:    q.Text,
			Weight:  q.Weight,
			Options: opts,
		})
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })

	return &TestFullResponse{
		ID:          test.ID,
		CategoryID:  test.CategoryID,
		Title:       test.Title,
		MaxAttempts: test.MaxAttempts,
		Questions:   qs,
	}
}
