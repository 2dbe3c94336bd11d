package repositories

import (
	"context"

	"nishan.dev/configs/configsdatabase"
	"nishan.dev/configs/configslog"
	"nishan.dev/models"
	"nishan.dev/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IGalleryRepository interface {
	IBaseRepository[models.Gallery]
	FindActivePaginated(ctx context.Context, params queryparams.ListParams) ([]models.Gallery, int64, error)
	FindRecent(ctx context.Context, limit int) ([]models.Gallery, error)
}

type GalleryRepository struct {
	*BaseRepository[models.Gallery]
}

func NewGalleryRepository() IGalleryRepository {
	return &GalleryRepository{BaseRepository: NewBaseRepository[models.Gallery](configsdatabase.GetDB())}
}

func NewGalleryRepositoryTx(tx *gorm.DB) IGalleryRepository {
	return &GalleryRepository{BaseRepository: NewBaseRepository[models.Gallery](tx)}
}

// FindActivePaginated returns one page of active gallery items, newest
// first, optionally narrowed to a category.
func (r *GalleryRepository) FindActivePaginated(ctx context.Context, params queryparams.ListParams) ([]models.Gallery, int64, error) {
	var items []models.Gallery
	var total int64
	db := r.getDB(ctx)

	query := db.Model(&models.Gallery{}).Where("is_active = ?", true)
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("GalleryRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return items, 0, nil
	}

	params.ClampPage(total)
	err := query.Order("created_at DESC").
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&items).Error
	if err != nil {
		configslog.Log.Error("GalleryRepository.Find: DB error", zap.Error(err))
		return nil, total, err
	}
	return items, total, nil
}

// FindRecent returns the newest active items; used by the home page.
func (r *GalleryRepository) FindRecent(ctx context.Context, limit int) ([]models.Gallery, error) {
	var items []models.Gallery
	err := r.getDB(ctx).Where("is_active = ?", true).
		Order("created_at DESC").Limit(limit).Find(&items).Error
	if err != nil {
		configslog.Log.Error("GalleryRepository.FindRecent: DB error", zap.Error(err))
		return nil, err
	}
	return items, nil
}

var _ IGalleryRepository = (*GalleryRepository)(nil)
