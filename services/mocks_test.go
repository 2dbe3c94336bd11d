package services

import (
	"context"

	"nishan.dev/models"
	"nishan.dev/pkg/queryparams"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockProjectRepository struct {
	mock.Mock
}

func (m *mockProjectRepository) Create(ctx context.Context, entity *models.Project) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *mockProjectRepository) Save(ctx context.Context, entity *models.Project) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockProjectRepository) FindActivePaginated(ctx context.Context, params queryparams.ListParams) ([]models.Project, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]models.Project), args.Get(1).(int64), args.Error(2)
}

func (m *mockProjectRepository) FindActiveNewestPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Project, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]models.Project), args.Get(1).(int64), args.Error(2)
}

func (m *mockProjectRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *mockProjectRepository) FindRelated(ctx context.Context, projectType string, excludeID uuid.UUID, limit int) ([]models.Project, error) {
	args := m.Called(ctx, projectType, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *mockProjectRepository) FindFeatured(ctx context.Context, limit int) ([]models.Project, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *mockProjectRepository) FindAllActive(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

type mockBlogRepository struct {
	mock.Mock
}

func (m *mockBlogRepository) Create(ctx context.Context, entity *models.Blog) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockBlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *mockBlogRepository) Save(ctx context.Context, entity *models.Blog) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockBlogRepository) FindPublishedPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Blog, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]models.Blog), args.Get(1).(int64), args.Error(2)
}

func (m *mockBlogRepository) FindPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *mockBlogRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBlogRepository) FindRecentPublished(ctx context.Context, excludeID uuid.UUID, limit int) ([]models.Blog, error) {
	args := m.Called(ctx, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *mockBlogRepository) FindLatest(ctx context.Context, limit int) ([]models.Blog, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *mockBlogRepository) AllPublishedTags(ctx context.Context, search string) ([]string, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockContactMessageRepository struct {
	mock.Mock
}

func (m *mockContactMessageRepository) Create(ctx context.Context, entity *models.ContactMessage) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockContactMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *mockContactMessageRepository) Save(ctx context.Context, entity *models.ContactMessage) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockContactMessageRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.ContactMessage, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]models.ContactMessage), args.Get(1).(int64), args.Error(2)
}

func (m *mockContactMessageRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockSkillRepository struct {
	mock.Mock
}

func (m *mockSkillRepository) Create(ctx context.Context, entity *models.Skill) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *mockSkillRepository) Save(ctx context.Context, entity *models.Skill) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockSkillRepository) FindActive(ctx context.Context) ([]models.Skill, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Skill), args.Error(1)
}

type mockFAQRepository struct {
	mock.Mock
}

func (m *mockFAQRepository) Create(ctx context.Context, entity *models.FAQ) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockFAQRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.FAQ, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FAQ), args.Error(1)
}

func (m *mockFAQRepository) Save(ctx context.Context, entity *models.FAQ) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockFAQRepository) FindActive(ctx context.Context, limit int) ([]models.FAQ, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.FAQ), args.Error(1)
}

type mockServiceRepository struct {
	mock.Mock
}

func (m *mockServiceRepository) Create(ctx context.Context, entity *models.Service) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *mockServiceRepository) Save(ctx context.Context, entity *models.Service) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockServiceRepository) FindActive(ctx context.Context, limit int) ([]models.Service, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *mockServiceRepository) FindActivePaginated(ctx context.Context, params queryparams.ListParams) ([]models.Service, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]models.Service), args.Get(1).(int64), args.Error(2)
}
