package services

import (
	"context"
	"sort"

	"github.com/learnspace/content-service/internal/models"
	"github.com/learnspace/content-service/internal/repositories"
)

// mockStore is the in-memory state behind MockRepository. WithTransaction
// clones it and copies the clone back only when fn succeeds, mirroring
// commit/rollback semantics.
type mockStore struct {
	categories map[uint]models.Category
	articles   map[uint]models.Article
	media      map[uint]models.Media
	tests      map[uint]models.Test
	questions  map[uint]models.Question
	options    map[uint]models.AnswerOption
	users      map[uint]models.User
	roles      map[uint]models.Role
	groups     map[uint]models.Group
	members    map[uint][]uint
	assigns    map[uint]models.Assignment
	progress   map[uint]models.Progress
	results    map[uint]models.TestResult
	answers    map[uint]models.TestAnswer

	nextID uint
}

func newMockStore() *mockStore {
	return &mockStore{
		categories: map[uint]models.Category{},
		articles:   map[uint]models.Article{},
		media:      map[uint]models.Media{},
		tests:      map[uint]models.Test{},
		questions:  map[uint]models.Question{},
		options:    map[uint]models.AnswerOption{},
		users:      map[uint]models.User{},
		roles:      map[uint]models.Role{},
		groups:     map[uint]models.Group{},
		members:    map[uint][]uint{},
		assigns:    map[uint]models.Assignment{},
		progress:   map[uint]models.Progress{},
		results:    map[uint]models.TestResult{},
		answers:    map[uint]models.TestAnswer{},
	}
}

func (s *mockStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *mockStore) clone() *mockStore {
	c := newMockStore()
	c.nextID = s.nextID
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.articles {
		c.articles[k] = v
	}
	for k, v := range s.media {
		c.media[k] = v
	}
	for k, v := range s.tests {
		c.tests[k] = v
	}
	for k, v := range s.questions {
		c.questions[k] = v
	}
	for k, v := range s.options {
		c.options[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.roles {
		c.roles[k] = v
	}
	for k, v := range s.groups {
		c.groups[k] = v
	}
	for k, v := range s.members {
		ids := make([]uint, len(v))
		copy(ids, v)
		c.members[k] = ids
	}
	for k, v := range s.assigns {
		c.assigns[k] = v
	}
	for k, v := range s.progress {
		c.progress[k] = v
	}
	for k, v := range s.results {
		c.results[k] = v
	}
	for k, v := range s.answers {
		c.answers[k] = v
	}
	return c
}

// mockHooks carries failure injection shared between a repository and its
// transaction-bound clones.
type mockHooks struct {
	failTestCreate     error
	failQuestionCreate error

	// fail the Nth option create, 1-based; 0 never fails
	failOptionCreateAt int
	optionCreates      int
}

// MockRepository is an in-memory Repository for service tests.
type MockRepository struct {
	store *mockStore
	hooks *mockHooks
}

func NewMockRepository() *MockRepository {
	return &MockRepository{store: newMockStore(), hooks: &mockHooks{}}
}

func (m *MockRepository) Category() repositories.CategoryRepository { return &mockCategoryRepo{m} }
func (m *MockRepository) Article() repositories.ArticleRepository   { return &mockArticleRepo{m} }
func (m *MockRepository) Media() repositories.MediaRepository       { return &mockMediaRepo{m} }
func (m *MockRepository) Test() repositories.TestRepository         { return &mockTestRepo{m} }
func (m *MockRepository) Question() repositories.QuestionRepository { return &mockQuestionRepo{m} }
func (m *MockRepository) Option() repositories.OptionRepository     { return &mockOptionRepo{m} }
func (m *MockRepository) User() repositories.UserRepository         { return &mockUserRepo{m} }
func (m *MockRepository) Role() repositories.RoleRepository         { return &mockRoleRepo{m} }
func (m *MockRepository) Group() repositories.GroupRepository       { return &mockGroupRepo{m} }
func (m *MockRepository) Assignment() repositories.AssignmentRepository {
	return &mockAssignmentRepo{m}
}
func (m *MockRepository) Progress() repositories.ProgressRepository { return &mockProgressRepo{m} }
func (m *MockRepository) TestResult() repositories.TestResultRepository {
	return &mockTestResultRepo{m}
}

func (m *MockRepository) WithTransaction(_ context.Context, fn func(repositories.Repository) error) error {
	clone := m.store.clone()
	txRepo := &MockRepository{store: clone, hooks: m.hooks}
	if err := fn(txRepo); err != nil {
		return err
	}
	*m.store = *clone
	return nil
}

func (m *MockRepository) Ping(context.Context) error { return nil }
func (m *MockRepository) Close() error               { return nil }

// Seed helpers.

func (m *MockRepository) seedCategory(title string, parentID *uint) models.Category {
	c := models.Category{ID: m.store.id(), Title: title, ParentID: parentID}
	m.store.categories[c.ID] = c
	return c
}

func (m *MockRepository) seedRole(name string) models.Role {
	r := models.Role{ID: m.store.id(), Name: name}
	m.store.roles[r.ID] = r
	return r
}

func (m *MockRepository) seedUser(username, passwordHash string, role models.Role) models.User {
	u := models.User{ID: m.store.id(), Username: username, PasswordHash: passwordHash, RoleID: role.ID, Role: &role}
	m.store.users[u.ID] = u
	return u
}

func sortedIDs[T any](items map[uint]T) []uint {
	ids := make([]uint, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ===== CATEGORY =====

type mockCategoryRepo struct{ m *MockRepository }

func (r *mockCategoryRepo) Create(_ context.Context, category *models.Category) error {
	category.ID = r.m.store.id()
	r.m.store.categories[category.ID] = *category
	return nil
}

func (r *mockCategoryRepo) GetByID(_ context.Context, id uint) (*models.Category, error) {
	c, ok := r.m.store.categories[id]
	if !ok {
		return nil, repositories.NewNotFoundError("category", id)
	}
	return &c, nil
}

func (r *mockCategoryRepo) Update(_ context.Context, category *models.Category) error {
	if _, ok := r.m.store.categories[category.ID]; !ok {
		return repositories.NewNotFoundError("category", category.ID)
	}
	r.m.store.categories[category.ID] = *category
	return nil
}

func (r *mockCategoryRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.m.store.categories[id]; !ok {
		return repositories.NewNotFoundError("category", id)
	}
	delete(r.m.store.categories, id)
	return nil
}

func (r *mockCategoryRepo) List(_ context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(r.m.store.categories))
	for _, id := range sortedIDs(r.m.store.categories) {
		out = append(out, r.m.store.categories[id])
	}
	return out, nil
}

func (r *mockCategoryRepo) ListByParent(_ context.Context, parentID *uint) ([]models.Category, error) {
	out := []models.Category{}
	for _, id := range sortedIDs(r.m.store.categories) {
		c := r.m.store.categories[id]
		if parentID == nil && c.ParentID == nil {
			out = append(out, c)
		} else if parentID != nil && c.ParentID != nil && *c.ParentID == *parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *mockCategoryRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.m.store.categories[id]
	return ok, nil
}

// ===== ARTICLE / MEDIA =====

type mockArticleRepo struct{ m *MockRepository }

func (r *mockArticleRepo) Create(_ context.Context, article *models.Article) error {
	article.ID = r.m.store.id()
	r.m.store.articles[article.ID] = *article
	return nil
}

func (r *mockArticleRepo) GetByID(_ context.Context, id uint) (*models.Article, error) {
	a, ok := r.m.store.articles[id]
	if !ok {
		return nil, repositories.NewNotFoundError("article", id)
	}
	return &a, nil
}

func (r *mockArticleRepo) GetByIDWithMedia(ctx context.Context, id uint) (*models.Article, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.MediaItems = []models.Media{}
	for _, mid := range sortedIDs(r.m.store.media) {
		item := r.m.store.media[mid]
		if item.ArticleID == id {
			a.MediaItems = append(a.MediaItems, item)
		}
	}
	sort.SliceStable(a.MediaItems, func(i, j int) bool {
		return a.MediaItems[i].SortOrder < a.MediaItems[j].SortOrder
	})
	return a, nil
}

func (r *mockArticleRepo) Update(_ context.Context, article *models.Article) error {
	if _, ok := r.m.store.articles[article.ID]; !ok {
		return repositories.NewNotFoundError("article", article.ID)
	}
	r.m.store.articles[article.ID] = *article
	return nil
}

func (r *mockArticleRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.m.store.articles[id]; !ok {
		return repositories.NewNotFoundError("article", id)
	}
	delete(r.m.store.articles, id)
	return nil
}

func (r *mockArticleRepo) List(_ context.Context) ([]models.Article, error) {
	out := []models.Article{}
	for _, id := range sortedIDs(r.m.store.articles) {
		out = append(out, r.m.store.articles[id])
	}
	return out, nil
}

func (r *mockArticleRepo) ListByCategory(_ context.Context, categoryID uint) ([]models.Article, error) {
	out := []models.Article{}
	for _, id := range sortedIDs(r.m.store.articles) {
		a := r.m.store.articles[id]
		if a.CategoryID == categoryID {
			out = append(out, a)
		}
	}
	return out, nil
}

type mockMediaRepo struct{ m *MockRepository }

func (r *mockMediaRepo) Create(_ context.Context, media *models.Media) error {
	media.ID = r.m.store.id()
	r.m.store.media[media.ID] = *media
	return nil
}

func (r *mockMediaRepo) GetByID(_ context.Context, id uint) (*models.Media, error) {
	item, ok := r.m.store.media[id]
	if !ok {
		return nil, repositories.NewNotFoundError("media", id)
	}
	return &item, nil
}

func (r *mockMediaRepo) Update(_ context.Context, media *models.Media) error {
	if _, ok := r.m.store.media[media.ID]; !ok {
		return repositories.NewNotFoundError("media", media.ID)
	}
	r.m.store.media[media.ID] = *media
	return nil
}

func (r *mockMediaRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.m.store.media[id]; !ok {
		return repositories.NewNotFoundError("media", id)
	}
	delete(r.m.store.media, id)
	return nil
}

func (r *mockMediaRepo) ListByArticle(_ context.Context, articleID uint) ([]models.Media, error) {
	out := []models.Media{}
	for _, id := range sortedIDs(r.m.store.media) {
		item := r.m.store.media[id]
		if item.ArticleID == articleID {
			out = append(out, item)
		}
	}
	return out, nil
}

// ===== TEST =====

type mockTestRepo struct{ m *MockRepository }

func (r *mockTestRepo) Create(_ context.Context, test *models.Test) error {
	if r.m.hooks.failTestCreate != nil {
		return r.m.hooks.failTestCreate
	}
	test.ID = r.m.store.id()
	r.m.store.tests[test.ID] = *test
	return nil
}

func (r *mockTestRepo) GetByID(_ context.Context, id uint) (*models.Test, error) {
	t, ok := r.m.store.tests[id]
	if !ok {
		return nil, repositories.NewNotFoundError("test", id)
	}
	return &t, nil
}

func (r *mockTestRepo) Update(_ context.Context, test *models.Test) error {
	if _, ok := r.m.store.tests[test.ID]; !ok {
		return repositories.NewNotFoundError("test", test.ID)
	}
	r.m.store.tests[test.ID] = *test
	return nil
}

func (r *mockTestRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.m.store.tests[id]; !ok {
		return repositories.NewNotFoundError("test", id)
	}
	delete(r.m.store.tests, id)
	return nil
}

func (r *mockTestRepo) List(_ context.Context) ([]models.Test, error) {
	out := []models.Test{}
	for _, id := range sortedIDs(r.m.store.tests) {
		out = append(out, r.m.store.tests[id])
	}
	return out, nil
}

func (r *mockTestRepo) ListByCategory(_ context.Context, categoryID uint) ([]models.Test, error) {
	out := []models.Test{}
	for _, id := range sortedIDs(r.m.store.tests) {
		t := r.m.store.tests[id]
		if t.CategoryID == categoryID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *mockTestRepo) CreateBatch(ctx context.Context, tests []*models.Test) error {
	for _, t := range tests {
		if err := r.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

// ===== QUESTION =====

type mockQuestionRepo struct{ m *MockRepository }

func (r *mockQuestionRepo) Create(_ context.Context, question *models.Question) error {
	if r.m.hooks.failQuestionCreate != nil {
		return r.m.hooks.failQuestionCreate
	}
	question.ID = r.m.store.id()
	r.m.store.questions[question.ID] = *question
	return nil
}

func (r *mockQuestionRepo) GetByID(_ context.Context, id uint) (*models.Question, error) {
	q, ok := r.m.store.questions[id]
	if !ok {
		return nil, repositories.NewNotFoundError("question", id)
	}
	return &q, nil
}

func (r *mockQuestionRepo) Update(_ context.Context, question *models.Question) error {
	if _, ok := r.m.store.questions[question.ID]; !ok {
		return repositories.NewNotFoundError("question", question.ID)
	}
	r.m.store.questions[question.ID] = *question
	return nil
}

func (r *mockQuestionRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.m.store.questions[id]; !ok {
		return repositories.NewNotFoundError("question", id)
	}
	delete(r.m.store.questions, id)
	return nil
}

func (r *mockQuestionRepo) ListByTest(_ context.Context, testID uint) ([]models.Question, error) {
	out := []models.Question{}
	for _, id := range sortedIDs(r.m.store.questions) {
		q := r.m.store.questions[id]
		if q.TestID == testID {
			out = append(out, q)
		}
	}
	return out, nil
}

// ===== OPTION =====

type mockOptionRepo struct{ m *MockRepository }

func (r *mockOptionRepo) Create(_ context.Context, option *models.AnswerOption) error {
	r.m.hooks.optionCreates++
	if at := r.m.hooks.failOptionCreateAt; at > 0 && r.m.hooks.optionCreates == at {
		return errInjected
	}
	option.ID = r.m.store.id()
	r.m.store.options[option.ID] = *option
	return nil
}

func (r *mockOptionRepo) GetByID(_ context.Context, id uint) (*models.AnswerOption, error) {
	o, ok := r.m.store.options[id]
	if !ok {
		return nil, repositories.NewNotFoundError("answer option", id)
	}
	return &o, nil
}

func (r *mockOptionRepo) Update(_ context.Context, option *models.AnswerOption) error {
	if _, ok := r.m.store.options[option.ID]; !ok {
		return repositories.NewNotFoundError("answer option", option.ID)
	}
	r.m.store.options[option.ID] = *option
	return nil
}

func (r *mockOptionRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.m.store.options[id]; !ok {
		return repositories.NewNotFoundError("answer option", id)
	}
	delete(r.m.store.options, id)
	return nil
}

func (r *mockOptionRepo) ListByQuestion(_ context.Context, questionID uint) ([]models.AnswerOption, error) {
	out := []models.AnswerOption{}
	for _, id := range sortedIDs(r.m.store.options) {
		o := r.m.store.options[id]
		if o.QuestionID == questionID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *mockOptionRepo) ListByQuestions(_ context.Context, questionIDs []uint) ([]models.AnswerOption, error) {
	want := map[uint]bool{}
	for _, id := range questionIDs {
		want[id] = true
	}
	out := []models.AnswerOption{}
	for _, id := range sortedIDs(r.m.store.options) {
		o := r.m.store.options[id]
		if want[o.QuestionID] {
			out = append(out, o)
		}
	}
	return out, nil
}

// ===== USER / ROLE / GROUP =====

type mockUserRepo struct{ m *MockRepository }

func (r *mockUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.m.store.id()
	r.m.store.users[user.ID] = *user
	return nil
}

func (r *mockUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.m.store.users[id]
	if !ok {
		return nil, repositories.NewNotFoundError("user", id)
	}
	return &u, nil
}

func (r *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.m.store.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, repositories.NewNotFoundError("user", 0)
}

func (r *mockUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.m.store.users[user.ID]; !ok {
		return repositories.NewNotFoundError("user", user.ID)
	}
	r.m.store.users[user.ID] = *user
	return nil
}

func (r *mockUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.m.store.users[id]; !ok {
		return repositories.NewNotFoundError("user", id)
	}
	delete(r.m.store.users, id)
	return nil
}

func (r *mockUserRepo) List(_ context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, id := range sortedIDs(r.m.store.users) {
		out = append(out, r.m.store.users[id])
	}
	return out, nil
}

type mockRoleRepo struct{ m *MockRepository }

func (r *mockRoleRepo) Create(_ context.Context, role *models.Role) error {
	role.ID = r.m.store.id()
	r.m.store.roles[role.ID] = *role
	return nil
}

func (r *mockRoleRepo) GetByID(_ context.Context, id uint) (*models.Role, error) {
	role, ok := r.m.store.roles[id]
	if !ok {
		return nil, repositories.NewNotFoundError("role", id)
	}
	return &role, nil
}

func (r *mockRoleRepo) GetByName(_ context.Context, name string) (*models.Role, error) {
	for _, role := range r.m.store.roles {
		if role.Name == name {
			return &role, nil
		}
	}
	return nil, repositories.NewNotFoundError("role", 0)
}

func (r *mockRoleRepo) List(_ context.Context) ([]models.Role, error) {
	out := []models.Role{}
	for _, id := range sortedIDs(r.m.store.roles) {
		out = append(out, r.m.store.roles[id])
	}
	return out, nil
}

type mockGroupRepo struct{ m *MockRepository }

func (r *mockGroupRepo) Create(_ context.Context, group *models.Group) error {
	group.ID = r.m.store.id()
	r.m.store.groups[group.ID] = *group
	return nil
}

func (r *mockGroupRepo) GetByID(_ context.Context, id uint) (*models.Group, error) {
	g, ok := r.m.store.groups[id]
	if !ok {
		return nil, repositories.NewNotFoundError("group", id)
	}
	return &g, nil
}

func (r *mockGroupRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.m.store.groups[id]; !ok {
		return repositories.NewNotFoundError("group", id)
	}
	delete(r.m.store.groups, id)
	return nil
}

func (r *mockGroupRepo) List(_ context.Context) ([]models.Group, error) {
	out := []models.Group{}
	for _, id := range sortedIDs(r.m.store.groups) {
		out = append(out, r.m.store.groups[id])
	}
	return out, nil
}

func (r *mockGroupRepo) AddMember(_ context.Context, groupID, userID uint) error {
	r.m.store.members[groupID] = append(r.m.store.members[groupID], userID)
	return nil
}

func (r *mockGroupRepo) RemoveMember(_ context.Context, groupID, userID uint) error {
	ids := r.m.store.members[groupID]
	out := ids[:0]
	for _, id := range ids {
		if id != userID {
			out = append(out, id)
		}
	}
	r.m.store.members[groupID] = out
	return nil
}

func (r *mockGroupRepo) ListMembers(_ context.Context, groupID uint) ([]models.User, error) {
	out := []models.User{}
	for _, id := range r.m.store.members[groupID] {
		if u, ok := r.m.store.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// ===== TRACKING =====

type mockAssignmentRepo struct{ m *MockRepository }

func (r *mockAssignmentRepo) Create(_ context.Context, assignment *models.Assignment) error {
	assignment.ID = r.m.store.id()
	r.m.store.assigns[assignment.ID] = *assignment
	return nil
}

func (r *mockAssignmentRepo) GetByID(_ context.Context, id uint) (*models.Assignment, error) {
	a, ok := r.m.store.assigns[id]
	if !ok {
		return nil, repositories.NewNotFoundError("assignment", id)
	}
	return &a, nil
}

func (r *mockAssignmentRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.m.store.assigns[id]; !ok {
		return repositories.NewNotFoundError("assignment", id)
	}
	delete(r.m.store.assigns, id)
	return nil
}

func (r *mockAssignmentRepo) List(_ context.Context) ([]models.Assignment, error) {
	out := []models.Assignment{}
	for _, id := range sortedIDs(r.m.store.assigns) {
		out = append(out, r.m.store.assigns[id])
	}
	return out, nil
}

func (r *mockAssignmentRepo) ListByUser(_ context.Context, userID uint) ([]models.Assignment, error) {
	out := []models.Assignment{}
	for _, id := range sortedIDs(r.m.store.assigns) {
		a := r.m.store.assigns[id]
		if a.UserID != nil && *a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *mockAssignmentRepo) ListByCategory(_ context.Context, categoryID uint) ([]models.Assignment, error) {
	out := []models.Assignment{}
	for _, id := range sortedIDs(r.m.store.assigns) {
		a := r.m.store.assigns[id]
		if a.CategoryID == categoryID {
			out = append(out, a)
		}
	}
	return out, nil
}

type mockProgressRepo struct{ m *MockRepository }

func (r *mockProgressRepo) Upsert(_ context.Context, progress *models.Progress) error {
	for _, id := range sortedIDs(r.m.store.progress) {
		p := r.m.store.progress[id]
		if p.UserID == progress.UserID && p.CategoryID == progress.CategoryID {
			p.Status = progress.Status
			r.m.store.progress[id] = p
			progress.ID = p.ID
			return nil
		}
	}
	progress.ID = r.m.store.id()
	r.m.store.progress[progress.ID] = *progress
	return nil
}

func (r *mockProgressRepo) GetByUserCategory(_ context.Context, userID, categoryID uint) (*models.Progress, error) {
	for _, p := range r.m.store.progress {
		if p.UserID == userID && p.CategoryID == categoryID {
			return &p, nil
		}
	}
	return nil, repositories.NewNotFoundError("progress", 0)
}

func (r *mockProgressRepo) ListByUser(_ context.Context, userID uint) ([]models.Progress, error) {
	out := []models.Progress{}
	for _, id := range sortedIDs(r.m.store.progress) {
		p := r.m.store.progress[id]
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *mockProgressRepo) ListByCategory(_ context.Context, categoryID uint) ([]models.Progress, error) {
	out := []models.Progress{}
	for _, id := range sortedIDs(r.m.store.progress) {
		p := r.m.store.progress[id]
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *mockProgressRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.m.store.progress[id]; !ok {
		return repositories.NewNotFoundError("progress", id)
	}
	delete(r.m.store.progress, id)
	return nil
}

type mockTestResultRepo struct{ m *MockRepository }

func (r *mockTestResultRepo) Create(_ context.Context, result *models.TestResult) error {
	result.ID = r.m.store.id()
	r.m.store.results[result.ID] = *result
	return nil
}

func (r *mockTestResultRepo) GetByID(_ context.Context, id uint) (*models.TestResult, error) {
	res, ok := r.m.store.results[id]
	if !ok {
		return nil, repositories.NewNotFoundError("test result", id)
	}
	return &res, nil
}

func (r *mockTestResultRepo) ListByUser(_ context.Context, userID uint) ([]models.TestResult, error) {
	out := []models.TestResult{}
	for _, id := range sortedIDs(r.m.store.results) {
		res := r.m.store.results[id]
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *mockTestResultRepo) ListByTest(_ context.Context, testID uint) ([]models.TestResult, error) {
	out := []models.TestResult{}
	for _, id := range sortedIDs(r.m.store.results) {
		res := r.m.store.results[id]
		if res.TestID == testID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *mockTestResultRepo) CreateAnswers(_ context.Context, answers []*models.TestAnswer) error {
	for _, a := range answers {
		a.ID = r.m.store.id()
		r.m.store.answers[a.ID] = *a
	}
	return nil
}
