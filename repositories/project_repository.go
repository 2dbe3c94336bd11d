package repositories

import (
	"context"
	"errors"

	"nishan.dev/configs/configsdatabase"
	"nishan.dev/configs/configslog"
	"nishan.dev/models"
	"nishan.dev/pkg/queryparams"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IProjectRepository interface {
	IBaseRepository[models.Project]
	FindActivePaginated(ctx context.Context, params queryparams.ListParams) ([]models.Project, int64, error)
	FindActiveNewestPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Project, int64, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	FindRelated(ctx context.Context, projectType string, excludeID uuid.UUID, limit int) ([]models.Project, error)
	FindFeatured(ctx context.Context, limit int) ([]models.Project, error)
	FindAllActive(ctx context.Context) ([]models.Project, error)
}

type ProjectRepository struct {
	*BaseRepository[models.Project]
}

func NewProjectRepository() IProjectRepository {
	return &ProjectRepository{BaseRepository: NewBaseRepository[models.Project](configsdatabase.GetDB())}
}

func NewProjectRepositoryTx(tx *gorm.DB) IProjectRepository {
	return &ProjectRepository{BaseRepository: NewBaseRepository[models.Project](tx)}
}

// applyProjectFilters narrows the active set by the optional type,
// free-text and start-date range filters.
func (r *ProjectRepository) applyProjectFilters(query *gorm.DB, params queryparams.ListParams) *gorm.DB {
	if params.Type != "" {
		query = query.Where("project_type = ?", params.Type)
	}
	if params.Search != "" {
		pattern := searchPattern(params.Search)
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(technologies) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if start, end := params.DateRange(); start != nil || end != nil {
		if start != nil {
			query = query.Where("start_date >= ?", *start)
		}
		if end != nil {
			query = query.Where("start_date <= ?", *end)
		}
	}
	return query
}

func (r *ProjectRepository) findPaginated(ctx context.Context, params queryparams.ListParams, order string, clamp bool) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64
	db := r.getDB(ctx)

	query := r.applyProjectFilters(db.Model(&models.Project{}).Where("is_active = ?", true), params)
	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("ProjectRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return projects, 0, nil
	}

	if clamp {
		params.ClampPage(total)
	} else if params.Page > queryparams.TotalPages(total, params.PerPage) {
		// The JSON API falls back to the first page instead of clamping.
		params.Page = queryparams.DefaultPage
	}

	err := query.Order(order).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&projects).Error
	if err != nil {
		configslog.Log.Error("ProjectRepository.Find: DB error", zap.Error(err))
		return nil, total, err
	}
	return projects, total, nil
}

// FindActivePaginated returns one page of active projects in canonical
// order: featured first, then newest.
func (r *ProjectRepository) FindActivePaginated(ctx context.Context, params queryparams.ListParams) ([]models.Project, int64, error) {
	return r.findPaginated(ctx, params, "is_featured DESC, created_at DESC", true)
}

// FindActiveNewestPaginated returns one page of active projects newest
// first; out-of-range pages fall back to page 1.
func (r *ProjectRepository) FindActiveNewestPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Project, int64, error) {
	return r.findPaginated(ctx, params, "created_at DESC", false)
}

// FindActiveByID returns the project only when it exists and is active.
func (r *ProjectRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	if id == uuid.Nil {
		return nil, errors.New("invalid project ID")
	}
	var project models.Project
	err := r.getDB(ctx).Where("id = ? AND is_active = ?", id, true).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ProjectRepository.FindActiveByID: DB error", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return &project, nil
}

// FindRelated returns up to limit active projects of the same type,
// newest first, excluding the project itself.
func (r *ProjectRepository) FindRelated(ctx context.Context, projectType string, excludeID uuid.UUID, limit int) ([]models.Project, error) {
	var projects []models.Project
	err := r.getDB(ctx).
		Where("is_active = ? AND project_type = ? AND id <> ?", true, projectType, excludeID).
		Order("created_at DESC").Limit(limit).
		Find(&projects).Error
	if err != nil {
		configslog.Log.Error("ProjectRepository.FindRelated: DB error", zap.String("type", projectType), zap.Error(err))
		return nil, err
	}
	return projects, nil
}

// FindFeatured returns the newest featured active projects.
func (r *ProjectRepository) FindFeatured(ctx context.Context, limit int) ([]models.Project, error) {
	var projects []models.Project
	err := r.getDB(ctx).
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").Limit(limit).
		Find(&projects).Error
	if err != nil {
		configslog.Log.Error("ProjectRepository.FindFeatured: DB error", zap.Error(err))
		return nil, err
	}
	return projects, nil
}

// FindAllActive returns every active project, newest first; used by the
// export layer.
func (r *ProjectRepository) FindAllActive(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.getDB(ctx).Where("is_active = ?", true).Order("created_at DESC").Find(&projects).Error
	if err != nil {
		configslog.Log.Error("ProjectRepository.FindAllActive: DB error", zap.Error(err))
		return nil, err
	}
	return projects, nil
}

var _ IProjectRepository = (*ProjectRepository)(nil)
