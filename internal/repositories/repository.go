package repositories

import "context"

// Repository aggregates all per-entity repositories behind one handle.
// WithTransaction yields a Repository whose sub-repositories all run on the
// same database transaction; the transaction commits when fn returns nil and
// rolls back on error or context cancellation, so multi-row writes such as
// the full test aggregate either land completely or not at all.
type Repository interface {
	// Content domain
	Category() CategoryRepository
	Article() ArticleRepository
	Media() MediaRepository

	// Test domain
	Test() TestRepository
	Question() QuestionRepository
	Option() OptionRepository

	// User domain
	User() UserRepository
	Role() RoleRepository
	Group() GroupRepository

	// Tracking domain
	Assignment() AssignmentRepository
	Progress() ProgressRepository
	TestResult() TestResultRepository

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
