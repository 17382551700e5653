package services

import (
	"errors"
	"io"
	"log/slog"

	"github.com/learnspace/content-service/internal/auth"
	"github.com/learnspace/content-service/internal/cache"
	"github.com/learnspace/content-service/internal/events"
	"github.com/learnspace/content-service/internal/models"
	"github.com/learnspace/content-service/internal/utils"
	"github.com/learnspace/content-service/internal/validator"
)

func seedCycleCategory(id, parent uint) models.Category {
	return models.Category{ID: id, Title: "loop", ParentID: &parent}
}

var errInjected = errors.New("injected failure")

func uintPtr(v uint) *uint    { return &v }
func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

type testEnv struct {
	repo     *MockRepository
	events   *events.MockEventPublisher
	services *ServiceManager
}

func newTestEnv() *testEnv {
	slogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	logger := utils.NewSlogLogger(slogger)
	repo := NewMockRepository()
	publisher := events.NewMockEventPublisher(slogger)
	tokens := auth.NewTokenManager("test-secret", 60)

	sm := NewServiceManager(repo, validator.New(), logger, cache.NewCacheManager(nil), publisher, tokens)
	return &testEnv{repo: repo, events: publisher, services: sm}
}
