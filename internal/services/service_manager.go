package services

import (
	"github.com/learnspace/content-service/internal/auth"
	"github.com/learnspace/content-service/internal/cache"
	"github.com/learnspace/content-service/internal/events"
	"github.com/learnspace/content-service/internal/repositories"
	"github.com/learnspace/content-service/internal/utils"
	"github.com/learnspace/content-service/internal/validator"
)

// ServiceManager wires every service over one repository, cache and bus.
type ServiceManager struct {
	Category     *CategoryService
	Test         *TestService
	Content      *ContentService
	User         *UserService
	Tracking     *TrackingService
	ImportExport *ImportExportService
}

func NewServiceManager(
	repo repositories.Repository,
	v *validator.Validator,
	logger utils.Logger,
	cm *cache.CacheManager,
	ep events.EventPublisher,
	tokens *auth.TokenManager,
) *ServiceManager {
	testService := NewTestService(repo, v, logger, cm, ep)
	return &ServiceManager{
		Category:     NewCategoryService(repo, v, logger, cm),
		Test:         testService,
		Content:      NewContentService(repo, v, logger),
		User:         NewUserService(repo, v, logger, tokens),
		Tracking:     NewTrackingService(repo, v, logger, ep),
		ImportExport: NewImportExportService(repo, v, logger, testService),
	}
}
