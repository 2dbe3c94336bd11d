package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"nishan.dev/configs/configslog"
	"nishan.dev/models"
	"nishan.dev/pkg/queryparams"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

type mockProjectService struct {
	mock.Mock
}

func (m *mockProjectService) ListProjects(ctx context.Context, params queryparams.ListParams) ([]models.Project, queryparams.PaginationMeta, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]models.Project), args.Get(1).(queryparams.PaginationMeta), args.Error(2)
}

func (m *mockProjectService) ListProjectsForAPI(ctx context.Context, params queryparams.ListParams) ([]models.Project, queryparams.PaginationMeta, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]models.Project), args.Get(1).(queryparams.PaginationMeta), args.Error(2)
}

func (m *mockProjectService) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, []models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Project), args.Get(1).([]models.Project), args.Error(2)
}

func (m *mockProjectService) FeaturedProjects(ctx context.Context, limit int) ([]models.Project, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *mockProjectService) AllActiveProjects(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Project), args.Error(1)
}

func TestListProjectsResponseShape(t *testing.T) {
	service := new(mockProjectService)
	handler := NewProjectAPIHandlerWithService(service)

	// Non-midnight timestamps must still serialize as plain dates.
	end := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)
	project := models.Project{
		Title:        "Portfolio Site",
		Description:  "<p>A <strong>fast</strong> site.</p>",
		ProjectType:  models.ProjectTypeWeb,
		Technologies: "Go, Fiber",
		GithubURL:    "https://github.com/example/site",
		StartDate:    time.Date(2025, 1, 15, 9, 15, 0, 0, time.UTC),
		EndDate:      &end,
	}
	project.ID = uuid.New()

	service.On("ListProjectsForAPI", mock.Anything, mock.Anything).
		Return([]models.Project{project}, queryparams.NewPaginationMeta(1, 1, 9), nil)

	app := fiber.New()
	app.Get("/api/projects", handler.ListProjects)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/projects", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Projects []struct {
			ID            string  `json:"id"`
			Title         string  `json:"title"`
			Description   string  `json:"description"`
			ProjectType   string  `json:"project_type"`
			FeaturedImage *string `json:"featured_image"`
			StartDate     string  `json:"start_date"`
			EndDate       *string `json:"end_date"`
		} `json:"projects"`
		Pagination struct {
			Total       int64 `json:"total"`
			Pages       int   `json:"pages"`
			Current     int   `json:"current"`
			HasNext     bool  `json:"has_next"`
			HasPrevious bool  `json:"has_previous"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))

	require.Len(t, payload.Projects, 1)
	got := payload.Projects[0]
	assert.Equal(t, project.ID.String(), got.ID)
	assert.Equal(t, "A fast site.", got.Description)
	assert.Equal(t, "Web Development", got.ProjectType)
	assert.Nil(t, got.FeaturedImage)
	assert.Equal(t, "2025-01-15", got.StartDate)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, "2025-06-01", *got.EndDate)
	assert.Equal(t, int64(1), payload.Pagination.Total)
	assert.Equal(t, 1, payload.Pagination.Current)
}

func TestListProjectsQueryFiltersForwarded(t *testing.T) {
	service := new(mockProjectService)
	handler := NewProjectAPIHandlerWithService(service)

	service.On("ListProjectsForAPI", mock.Anything, mock.MatchedBy(func(p queryparams.ListParams) bool {
		return p.Type == "web" && p.Search == "tracker" && p.Page == 3
	})).Return([]models.Project{}, queryparams.NewPaginationMeta(0, 1, 9), nil)

	app := fiber.New()
	app.Get("/api/projects", handler.ListProjects)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/projects?type=web&search=tracker&page=3", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	service.AssertExpectations(t)
}

func TestListProjectsEmptyListIsArray(t *testing.T) {
	service := new(mockProjectService)
	handler := NewProjectAPIHandlerWithService(service)

	service.On("ListProjectsForAPI", mock.Anything, mock.Anything).
		Return([]models.Project{}, queryparams.NewPaginationMeta(0, 1, 9), nil)

	app := fiber.New()
	app.Get("/api/projects", handler.ListProjects)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/projects", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"projects":[]`)
}
