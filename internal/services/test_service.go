package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/learnspace/content-service/internal/cache"
	"github.com/learnspace/content-service/internal/events"
	"github.com/learnspace/content-service/internal/models"
	"github.com/learnspace/content-service/internal/repositories"
	"github.com/learnspace/content-service/internal/utils"
	"github.com/learnspace/content-service/internal/validator"
)

// Defaults applied when the request leaves the field unset.
const (
	defaultMaxAttempts = 3
	defaultWeight      = 1
)

// TestService owns the test aggregate: tests, questions and answer options.
type TestService struct {
	repo      repositories.Repository
	validator *validator.Validator
	logger    utils.Logger
	cache     *cache.CacheManager
	events    events.EventPublisher
}

func NewTestService(repo repositories.Repository, v *validator.Validator, logger utils.Logger, cm *cache.CacheManager, ep events.EventPublisher) *TestService {
	return &TestService{
		repo:      repo,
		validator: v,
		logger:    logger,
		cache:     cm,
		events:    ep,
	}
}

func fullTestCacheKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10) + ":full"
}

// CreateFull persists a test with all of its questions and options in a
// single transaction. Any failure rolls back the whole write; on success the
// returned document carries every generated id.
func (s *TestService) CreateFull(ctx context.Context, req *validator.TestFullCreateRequest) (*TestFullResponse, error) {
	if errs := s.validator.GetBusinessValidator().ValidateTestFullCreate(req); len(errs) > 0 {
		return nil, errs
	}

	exists, err := s.repo.Category().Exists(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return nil, NewReferenceError("category", req.CategoryID)
	}

	test := &models.Test{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		MaxAttempts: defaultMaxAttempts,
	}
	if req.MaxAttempts != nil {
		test.MaxAttempts = *req.MaxAttempts
	}

	questions := make([]models.Question, 0, len(req.Questions))
	options := make([]models.AnswerOption, 0)

	err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if err := txRepo.Test().Create(ctx, test); err != nil {
			return fmt.Errorf("failed to create test: %w", err)
		}

		for _, qReq := range req.Questions {
			question := models.Question{
				TestID: test.ID,
				Text:   qReq.Text,
				Weight: defaultWeight,
			}
			if qReq.Weight != nil {
				question.Weight = *qReq.Weight
			}
			if err := txRepo.Question().Create(ctx, &question); err != nil {
				return fmt.Errorf("failed to create question: %w", err)
			}

			for _, oReq := range qReq.Options {
				option := models.AnswerOption{
					QuestionID: question.ID,
					Text:       oReq.Text,
				}
				if oReq.IsCorrect != nil {
					option.IsCorrect = *oReq.IsCorrect
				}
				if err := txRepo.Option().Create(ctx, &option); err != nil {
					return fmt.Errorf("failed to create answer option: %w", err)
				}
				options = append(options, option)
			}

			questions = append(questions, question)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Test created",
		"test_id", test.ID,
		"category_id", test.CategoryID,
		"questions", len(questions),
	)

	if err := s.events.Publish(ctx, events.TopicTestCreated, map[string]interface{}{
		"test_id":     test.ID,
		"category_id": test.CategoryID,
		"questions":   len(questions),
	}); err != nil {
		s.logger.Warn("Failed to publish test.created event", "error", err, "test_id", test.ID)
	}

	return assembleTestAggregate(test, questions, options), nil
}

// GetFull reads the complete aggregate for a test in three queries: the test
// row, its questions, and all options for those questions in one bulk fetch.
func (s *TestService) GetFull(ctx context.Context, testID uint) (*TestFullResponse, error) {
	var response TestFullResponse
	err := s.cache.Test.CacheOrExecute(ctx, fullTestCacheKey(testID), &response, cache.TestCacheConfig.TTL, func() (interface{}, error) {
		return s.loadFull(ctx, testID)
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (s *TestService) loadFull(ctx context.Context, testID uint) (*TestFullResponse, error) {
	test, err := s.repo.Test().GetByID(ctx, testID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("failed to get test: %w", err)
	}

	questions, err := s.repo.Question().ListByTest(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	questionIDs := make([]uint, 0, len(questions))
	for _, q := range questions {
		questionIDs = append(questionIDs, q.ID)
	}

	options, err := s.repo.Option().ListByQuestions(ctx, questionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list answer options: %w", err)
	}

	return assembleTestAggregate(test, questions, options), nil
}

// ===== FLAT CRUD =====

func (s *TestService) CreateTest(ctx context.Context, req *validator.TestCreateRequest) (*models.Test, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	exists, err := s.repo.Category().Exists(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return nil, NewReferenceError("category", req.CategoryID)
	}

	test := &models.Test{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		MaxAttempts: defaultMaxAttempts,
	}
	if req.MaxAttempts != nil {
		test.MaxAttempts = *req.MaxAttempts
	}

	if err := s.repo.Test().Create(ctx, test); err != nil {
		return nil, fmt.Errorf("failed to create test: %w", err)
	}

	return test, nil
}

func (s *TestService) GetTest(ctx context.Context, id uint) (*models.Test, error) {
	test, err := s.repo.Test().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("failed to get test: %w", err)
	}
	return test, nil
}

func (s *TestService) ListTests(ctx context.Context) ([]models.Test, error) {
	tests, err := s.repo.Test().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tests: %w", err)
	}
	return tests, nil
}

func (s *TestService) ListTestsByCategory(ctx context.Context, categoryID uint) ([]models.Test, error) {
	tests, err := s.repo.Test().ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tests: %w", err)
	}
	return tests, nil
}

func (s *TestService) UpdateTest(ctx context.Context, id uint, req *validator.TestUpdateRequest) (*models.Test, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	test, err := s.GetTest(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		test.Title = *req.Title
	}
	if req.MaxAttempts != nil {
		test.MaxAttempts = *req.MaxAttempts
	}

	if err := s.repo.Test().Update(ctx, test); err != nil {
		return nil, fmt.Errorf("failed to update test: %w", err)
	}

	s.invalidateTest(ctx, id)

	return test, nil
}

func (s *TestService) DeleteTest(ctx context.Context, id uint) error {
	if err := s.repo.Test().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrTestNotFound
		}
		return fmt.Errorf("failed to delete test: %w", err)
	}

	s.invalidateTest(ctx, id)

	return nil
}

// ===== QUESTIONS =====

func (s *TestService) CreateQuestion(ctx context.Context, req *validator.QuestionCreateRequest) (*models.Question, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.GetTest(ctx, req.TestID); err != nil {
		if err == ErrTestNotFound {
			return nil, NewReferenceError("test", req.TestID)
		}
		return nil, err
	}

	question := &models.Question{
		TestID: req.TestID,
		Text:   req.Text,
		Weight: defaultWeight,
	}
	if req.Weight != nil {
		question.Weight = *req.Weight
	}

	if err := s.repo.Question().Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	s.invalidateTest(ctx, req.TestID)

	return question, nil
}

func (s *TestService) UpdateQuestion(ctx context.Context, id uint, req *validator.QuestionUpdateRequest) (*models.Question, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	question, err := s.repo.Question().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	if req.Text != nil {
		question.Text = *req.Text
	}
	if req.Weight != nil {
		question.Weight = *req.Weight
	}

	if err := s.repo.Question().Update(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}

	s.invalidateTest(ctx, question.TestID)

	return question, nil
}

func (s *TestService) DeleteQuestion(ctx context.Context, id uint) error {
	question, err := s.repo.Question().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("failed to get question: %w", err)
	}

	if err := s.repo.Question().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}

	s.invalidateTest(ctx, question.TestID)

	return nil
}

// ===== OPTIONS =====

func (s *TestService) CreateOption(ctx context.Context, req *validator.OptionCreateRequest) (*models.AnswerOption, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	question, err := s.repo.Question().GetByID(ctx, req.QuestionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewReferenceError("question", req.QuestionID)
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	option := &models.AnswerOption{
		QuestionID: req.QuestionID,
		Text:       req.Text,
	}
	if req.IsCorrect != nil {
		option.IsCorrect = *req.IsCorrect
	}

	if err := s.repo.Option().Create(ctx, option); err != nil {
		return nil, fmt.Errorf("failed to create answer option: %w", err)
	}

	s.invalidateTest(ctx, question.TestID)

	return option, nil
}

func (s *TestService) DeleteOption(ctx context.Context, id uint) error {
	option, err := s.repo.Option().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrOptionNotFound
		}
		return fmt.Errorf("failed to get answer option: %w", err)
	}

	question, err := s.repo.Question().GetByID(ctx, option.QuestionID)
	if err != nil && !repositories.IsNotFoundError(err) {
		return fmt.Errorf("failed to get question: %w", err)
	}

	if err := s.repo.Option().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete answer option: %w", err)
	}

	if question != nil {
		s.invalidateTest(ctx, question.TestID)
	}

	return nil
}

func (s *TestService) invalidateTest(ctx context.Context, testID uint) {
	if err := s.cache.Test.Delete(ctx, fullTestCacheKey(testID)); err != nil && err != cache.ErrCacheNotAvailable {
		s.logger.Warn("Failed to invalidate test cache", "error", err, "test_id", testID)
	}
}
