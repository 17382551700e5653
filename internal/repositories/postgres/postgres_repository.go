package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/learnspace/content-service/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface.
type PostgreSQLRepository struct {
	db *gorm.DB

	category   repositories.CategoryRepository
	article    repositories.ArticleRepository
	media      repositories.MediaRepository
	test       repositories.TestRepository
	question   repositories.QuestionRepository
	option     repositories.OptionRepository
	user       repositories.UserRepository
	role       repositories.RoleRepository
	group      repositories.GroupRepository
	assignment repositories.AssignmentRepository
	progress   repositories.ProgressRepository
	testResult repositories.TestResultRepository
}

// RepositoryConfig holds configuration for repository initialization.
type RepositoryConfig struct {
	DB *gorm.DB
}

// NewPostgreSQLRepository creates a repository with all sub-repositories
// bound to the given connection.
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	return newWithDB(config.DB)
}

func newWithDB(db *gorm.DB) *PostgreSQLRepository {
	return &PostgreSQLRepository{
		db:         db,
		category:   NewCategoryPostgreSQL(db),
		article:    NewArticlePostgreSQL(db),
		media:      NewMediaPostgreSQL(db),
		test:       NewTestPostgreSQL(db),
		question:   NewQuestionPostgreSQL(db),
		option:     NewOptionPostgreSQL(db),
		user:       NewUserPostgreSQL(db),
		role:       NewRolePostgreSQL(db),
		group:      NewGroupPostgreSQL(db),
		assignment: NewAssignmentPostgreSQL(db),
		progress:   NewProgressPostgreSQL(db),
		testResult: NewTestResultPostgreSQL(db),
	}
}

func (r *PostgreSQLRepository) Category() repositories.CategoryRepository { return r.category }

func (r *PostgreSQLRepository) Article() repositories.ArticleRepository { return r.article }

func (r *PostgreSQLRepository) Media() repositories.MediaRepository { return r.media }

func (r *PostgreSQLRepository) Test() repositories.TestRepository { return r.test }

func (r *PostgreSQLRepository) Question() repositories.QuestionRepository { return r.question }

func (r *PostgreSQLRepository) Option() repositories.OptionRepository { return r.option }

func (r *PostgreSQLRepository) User() repositories.UserRepository { return r.user }

func (r *PostgreSQLRepository) Role() repositories.RoleRepository { return r.role }

func (r *PostgreSQLRepository) Group() repositories.GroupRepository { return r.group }

func (r *PostgreSQLRepository) Assignment() repositories.AssignmentRepository { return r.assignment }

func (r *PostgreSQLRepository) Progress() repositories.ProgressRepository { return r.progress }

func (r *PostgreSQLRepository) TestResult() repositories.TestResultRepository { return r.testResult }

// WithTransaction executes fn against a Repository whose sub-repositories all
// share one database transaction. gorm commits when fn returns nil and rolls
// back on error or panic; context cancellation aborts the transaction as
// well, so a cancelled aggregate write leaves no partial rows behind.
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newWithDB(tx))
	})
}

// Ping checks the health of the database connection.
func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close closes the underlying connection pool.
func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// RepositoryManager implements the RepositoryManager interface.
type RepositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &RepositoryManager{config: config}
}

// Initialize validates the configuration and connects the repository.
func (rm *RepositoryManager) Initialize() error {
	if rm.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}

	sqlDB, err := rm.config.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	rm.repo = NewPostgreSQLRepository(rm.config)

	return nil
}

func (rm *RepositoryManager) GetRepository() repositories.Repository {
	return rm.repo
}

func (rm *RepositoryManager) HealthCheck(ctx context.Context) error {
	if rm.repo == nil {
		return fmt.Errorf("repository not initialized")
	}

	return rm.repo.Ping(ctx)
}

func (rm *RepositoryManager) Shutdown(ctx context.Context) error {
	if rm.repo == nil {
		return nil
	}

	return rm.repo.Close()
}
