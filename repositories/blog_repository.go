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

type IBlogRepository interface {
	IBaseRepository[models.Blog]
	FindPublishedPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Blog, int64, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	FindRecentPublished(ctx context.Context, excludeID uuid.UUID, limit int) ([]models.Blog, error)
	FindLatest(ctx context.Context, limit int) ([]models.Blog, error)
	AllPublishedTags(ctx context.Context, search string) ([]string, error)
}

type BlogRepository struct {
	*BaseRepository[models.Blog]
}

func NewBlogRepository() IBlogRepository {
	return &BlogRepository{BaseRepository: NewBaseRepository[models.Blog](configsdatabase.GetDB())}
}

func NewBlogRepositoryTx(tx *gorm.DB) IBlogRepository {
	return &BlogRepository{BaseRepository: NewBaseRepository[models.Blog](tx)}
}

func (r *BlogRepository) applyBlogFilters(query *gorm.DB, params queryparams.ListParams) *gorm.DB {
	if params.Search != "" {
		pattern := searchPattern(params.Search)
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(tags) LIKE ? OR LOWER(excerpt) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	return query
}

// FindPublishedPaginated returns one page of published posts, newest
// published first.
func (r *BlogRepository) FindPublishedPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Blog, int64, error) {
	var posts []models.Blog
	var total int64
	db := r.getDB(ctx)

	query := r.applyBlogFilters(db.Model(&models.Blog{}).Where("is_published = ?", true), params)
	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("BlogRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return posts, 0, nil
	}

	params.ClampPage(total)
	err := query.Order("published_date DESC, created_at DESC").
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&posts).Error
	if err != nil {
		configslog.Log.Error("BlogRepository.Find: DB error", zap.Error(err))
		return nil, total, err
	}
	return posts, total, nil
}

// FindPublishedBySlug returns the post only when it exists and is
// published.
func (r *BlogRepository) FindPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	if slug == "" {
		return nil, errors.New("slug cannot be empty")
	}
	var post models.Blog
	err := r.getDB(ctx).Where("slug = ? AND is_published = ?", slug, true).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("BlogRepository.FindPublishedBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &post, nil
}

// IncrementViews bumps the view counter with a single UPDATE so that
// concurrent readers cannot lose updates.
func (r *BlogRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errors.New("invalid blog ID")
	}
	result := r.getDB(ctx).Model(&models.Blog{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		configslog.Log.Error("BlogRepository.IncrementViews: DB error", zap.String("id", id.String()), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindRecentPublished returns the newest published posts excluding the
// given one.
func (r *BlogRepository) FindRecentPublished(ctx context.Context, excludeID uuid.UUID, limit int) ([]models.Blog, error) {
	var posts []models.Blog
	query := r.getDB(ctx).Where("is_published = ?", true)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Order("published_date DESC, created_at DESC").Limit(limit).Find(&posts).Error
	if err != nil {
		configslog.Log.Error("BlogRepository.FindRecentPublished: DB error", zap.Error(err))
		return nil, err
	}
	return posts, nil
}

// FindLatest returns the newest published posts; used by the home page.
func (r *BlogRepository) FindLatest(ctx context.Context, limit int) ([]models.Blog, error) {
	return r.FindRecentPublished(ctx, uuid.Nil, limit)
}

// AllPublishedTags returns the raw tag fields of every published post
// matching the search filter. The service splits and deduplicates them.
func (r *BlogRepository) AllPublishedTags(ctx context.Context, search string) ([]string, error) {
	var fields []string
	query := r.applyBlogFilters(
		r.getDB(ctx).Model(&models.Blog{}).Where("is_published = ?", true),
		queryparams.ListParams{Search: search},
	)
	if err := query.Pluck("tags", &fields).Error; err != nil {
		configslog.Log.Error("BlogRepository.AllPublishedTags: DB error", zap.Error(err))
		return nil, err
	}
	return fields, nil
}

var _ IBlogRepository = (*BlogRepository)(nil)
