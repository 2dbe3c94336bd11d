package services

import (
	"context"
	"errors"

	"nishan.dev/models"
	"nishan.dev/pkg/queryparams"
	"nishan.dev/repositories"

	"github.com/google/uuid"
)

type ProjectServiceError string

func (e ProjectServiceError) Error() string { return string(e) }

const (
	ErrProjectNotFound ProjectServiceError = "project not found"
)

const relatedProjectsLimit = 3

type IProjectService interface {
	ListProjects(ctx context.Context, params queryparams.ListParams) ([]models.Project, queryparams.PaginationMeta, error)
	ListProjectsForAPI(ctx context.Context, params queryparams.ListParams) ([]models.Project, queryparams.PaginationMeta, error)
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, []models.Project, error)
	FeaturedProjects(ctx context.Context, limit int) ([]models.Project, error)
	AllActiveProjects(ctx context.Context) ([]models.Project, error)
}

type ProjectService struct {
	repo repositories.IProjectRepository
}

func NewProjectService() IProjectService {
	return &ProjectService{repo: repositories.NewProjectRepository()}
}

func NewProjectServiceWithRepo(repo repositories.IProjectRepository) IProjectService {
	return &ProjectService{repo: repo}
}

// ListProjects returns one page of active projects in canonical order
// (featured first, then newest) with type/search/date filters applied.
func (s *ProjectService) ListProjects(ctx context.Context, params queryparams.ListParams) ([]models.Project, queryparams.PaginationMeta, error) {
	params.Validate(ProjectsPerPage)
	projects, total, err := s.repo.FindActivePaginated(ctx, params)
	if err != nil {
		return nil, queryparams.PaginationMeta{}, err
	}
	params.ClampPage(total)
	return projects, queryparams.NewPaginationMeta(total, params.Page, params.PerPage), nil
}

// ListProjectsForAPI returns one page newest first. An out-of-range page
// falls back to the first page rather than clamping.
func (s *ProjectService) ListProjectsForAPI(ctx context.Context, params queryparams.ListParams) ([]models.Project, queryparams.PaginationMeta, error) {
	params.Validate(ProjectsPerPage)
	projects, total, err := s.repo.FindActiveNewestPaginated(ctx, params)
	if err != nil {
		return nil, queryparams.PaginationMeta{}, err
	}
	if params.Page > queryparams.TotalPages(total, params.PerPage) {
		params.Page = queryparams.DefaultPage
	}
	return projects, queryparams.NewPaginationMeta(total, params.Page, params.PerPage), nil
}

// GetProject returns the active project plus up to 3 related projects
// of the same type, newest first.
func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, []models.Project, error) {
	project, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, err
	}

	related, err := s.repo.FindRelated(ctx, project.ProjectType, project.ID, relatedProjectsLimit)
	if err != nil {
		// The detail page is still worth rendering without its sidebar.
		related = nil
	}
	return project, related, nil
}

func (s *ProjectService) FeaturedProjects(ctx context.Context, limit int) ([]models.Project, error) {
	return s.repo.FindFeatured(ctx, limit)
}

func (s *ProjectService) AllActiveProjects(ctx context.Context) ([]models.Project, error) {
	return s.repo.FindAllActive(ctx)
}

var _ IProjectService = (*ProjectService)(nil)
