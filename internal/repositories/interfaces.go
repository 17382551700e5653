package repositories

import (
	"context"

	"github.com/learnspace/content-service/internal/models"
)

// ===== CONTENT DOMAIN =====

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error

	// List returns every category in insertion order; the tree builder works
	// on this full flat snapshot.
	List(ctx context.Context) ([]models.Category, error)
	ListByParent(ctx context.Context, parentID *uint) ([]models.Category, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetByIDWithMedia(ctx context.Context, id uint) (*models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Article, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]models.Article, error)
}

type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	GetByID(ctx context.Context, id uint) (*models.Media, error)
	Update(ctx context.Context, media *models.Media) error
	Delete(ctx context.Context, id uint) error
	ListByArticle(ctx context.Context, articleID uint) ([]models.Media, error)
}

// ===== TEST DOMAIN =====

type TestRepository interface {
	Create(ctx context.Context, test *models.Test) error
	GetByID(ctx context.Context, id uint) (*models.Test, error)
	Update(ctx context.Context, test *models.Test) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Test, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]models.Test, error)
	CreateBatch(ctx context.Context, tests []*models.Test) error
}

type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id uint) error

	// ListByTest is the single bulk fetch for the question level of an
	// aggregate read.
	ListByTest(ctx context.Context, testID uint) ([]models.Question, error)
}

type OptionRepository interface {
	Create(ctx context.Context, option *models.AnswerOption) error
	GetByID(ctx context.Context, id uint) (*models.AnswerOption, error)
	Update(ctx context.Context, option *models.AnswerOption) error
	Delete(ctx context.Context, id uint) error
	ListByQuestion(ctx context.Context, questionID uint) ([]models.AnswerOption, error)

	// ListByQuestions is the single bulk fetch for the option level of an
	// aggregate read; one query regardless of question count.
	ListByQuestions(ctx context.Context, questionIDs []uint) ([]models.AnswerOption, error)
}

// ===== USER DOMAIN =====

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.User, error)
}

type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	GetByID(ctx context.Context, id uint) (*models.Role, error)
	GetByName(ctx context.Context, name string) (*models.Role, error)
	List(ctx context.Context) ([]models.Role, error)
}

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id uint) (*models.Group, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Group, error)
	AddMember(ctx context.Context, groupID, userID uint) error
	RemoveMember(ctx context.Context, groupID, userID uint) error
	ListMembers(ctx context.Context, groupID uint) ([]models.User, error)
}

// ===== TRACKING DOMAIN =====

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetByID(ctx context.Context, id uint) (*models.Assignment, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Assignment, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Assignment, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]models.Assignment, error)
}

type ProgressRepository interface {
	// Upsert inserts or updates the row keyed by (user_id, category_id).
	Upsert(ctx context.Context, progress *models.Progress) error
	GetByUserCategory(ctx context.Context, userID, categoryID uint) (*models.Progress, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Progress, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]models.Progress, error)
	Delete(ctx context.Context, id uint) error
}

type TestResultRepository interface {
	Create(ctx context.Context, result *models.TestResult) error
	GetByID(ctx context.Context, id uint) (*models.TestResult, error)
	ListByUser(ctx context.Context, userID uint) ([]models.TestResult, error)
	ListByTest(ctx context.Context, testID uint) ([]models.TestResult, error)
	CreateAnswers(ctx context.Context, answers []*models.TestAnswer) error
}
