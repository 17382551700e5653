package services

import (
	"context"
	"fmt"

	"github.com/learnspace/content-service/internal/events"
	"github.com/learnspace/content-service/internal/models"
	"github.com/learnspace/content-service/internal/repositories"
	"github.com/learnspace/content-service/internal/utils"
	"github.com/learnspace/content-service/internal/validator"
)

// TrackingService owns assignments, per-category progress and test results.
type TrackingService struct {
	repo      repositories.Repository
	validator *validator.Validator
	logger    utils.Logger
	events    events.EventPublisher
}

func NewTrackingService(repo repositories.Repository, v *validator.Validator, logger utils.Logger, ep events.EventPublisher) *TrackingService {
	return &TrackingService{
		repo:      repo,
		validator: v,
		logger:    logger,
		events:    ep,
	}
}

// CreateAssignment assigns a category to a user or a group. assignedBy is
// the authenticated caller, not part of the payload.
func (s *TrackingService) CreateAssignment(ctx context.Context, assignedBy uint, req *validator.AssignmentCreateRequest) (*models.Assignment, error) {
	if errs := s.validator.GetBusinessValidator().ValidateAssignmentCreate(req); len(errs) > 0 {
		return nil, errs
	}

	exists, err := s.repo.Category().Exists(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return nil, NewReferenceError("category", req.CategoryID)
	}

	if req.UserID != nil {
		if _, err := s.repo.User().GetByID(ctx, *req.UserID); err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, NewReferenceError("user", *req.UserID)
			}
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
	}
	if req.GroupID != nil {
		if _, err := s.repo.Group().GetByID(ctx, *req.GroupID); err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, NewReferenceError("group", *req.GroupID)
			}
			return nil, fmt.Errorf("failed to get group: %w", err)
		}
	}

	assignment := &models.Assignment{
		AssignedBy: assignedBy,
		CategoryID: req.CategoryID,
		UserID:     req.UserID,
		GroupID:    req.GroupID,
	}

	if err := s.repo.Assignment().Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return assignment, nil
}

func (s *TrackingService) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	assignments, err := s.repo.Assignment().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

func (s *TrackingService) ListAssignmentsByUser(ctx context.Context, userID uint) ([]models.Assignment, error) {
	assignments, err := s.repo.Assignment().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

func (s *TrackingService) DeleteAssignment(ctx context.Context, id uint) error {
	if err := s.repo.Assignment().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// UpsertProgress records a user's status for a category; repeated writes for
// the same pair update the existing row.
func (s *TrackingService) UpsertProgress(ctx context.Context, req *validator.ProgressUpsertRequest) (*models.Progress, error) {
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

	progress := &models.Progress{
		UserID:     req.UserID,
		CategoryID: req.CategoryID,
		Status:     models.ProgressStatus(req.Status),
	}

	if err := s.repo.Progress().Upsert(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to upsert progress: %w", err)
	}

	if err := s.events.Publish(ctx, events.TopicProgressUpdated, map[string]interface{}{
		"user_id":     req.UserID,
		"category_id": req.CategoryID,
		"status":      req.Status,
	}); err != nil {
		s.logger.Warn("Failed to publish progress.updated event", "error", err)
	}

	return progress, nil
}

func (s *TrackingService) ListProgressByUser(ctx context.Context, userID uint) ([]models.Progress, error) {
	progress, err := s.repo.Progress().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	return progress, nil
}

// RecordResult stores a result with its answers atomically.
func (s *TrackingService) RecordResult(ctx context.Context, req *validator.TestResultCreateRequest) (*models.TestResult, error) {
	if errs := s.validator.GetBusinessValidator().ValidateTestResultCreate(req); len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.repo.Test().GetByID(ctx, req.TestID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewReferenceError("test", req.TestID)
		}
		return nil, fmt.Errorf("failed to get test: %w", err)
	}

	result := &models.TestResult{
		UserID:   req.UserID,
		TestID:   req.TestID,
		Score:    req.Score,
		MaxScore: req.MaxScore,
		Passed:   req.Passed,
	}

	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if err := txRepo.TestResult().Create(ctx, result); err != nil {
			return fmt.Errorf("failed to create test result: %w", err)
		}

		if len(req.Answers) == 0 {
			return nil
		}

		answers := make([]*models.TestAnswer, 0, len(req.Answers))
		for _, a := range req.Answers {
			answers = append(answers, &models.TestAnswer{
				TestResultID:     result.ID,
				QuestionID:       a.QuestionID,
				SelectedOptionID: a.SelectedOptionID,
			})
		}
		if err := txRepo.TestResult().CreateAnswers(ctx, answers); err != nil {
			return fmt.Errorf("failed to create test answers: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.events.Publish(ctx, events.TopicResultRecorded, map[string]interface{}{
		"result_id": result.ID,
		"user_id":   result.UserID,
		"test_id":   result.TestID,
		"passed":    result.Passed,
	}); err != nil {
		s.logger.Warn("Failed to publish result.recorded event", "error", err)
	}

	return result, nil
}

func (s *TrackingService) ListResultsByUser(ctx context.Context, userID uint) ([]models.TestResult, error) {
	results, err := s.repo.TestResult().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list test results: %w", err)
	}
	return results, nil
}

func (s *TrackingService) ListResultsByTest(ctx context.Context, testID uint) ([]models.TestResult, error) {
	results, err := s.repo.TestResult().ListByTest(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("failed to list test results: %w", err)
	}
	return results, nil
}
