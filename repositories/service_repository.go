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

type IServiceRepository interface {
	IBaseRepository[models.Service]
	FindActive(ctx context.Context, limit int) ([]models.Service, error)
	FindActivePaginated(ctx context.Context, params queryparams.ListParams) ([]models.Service, int64, error)
}

type ServiceRepository struct {
	*BaseRepository[models.Service]
}

func NewServiceRepository() IServiceRepository {
	return &ServiceRepository{BaseRepository: NewBaseRepository[models.Service](configsdatabase.GetDB())}
}

func NewServiceRepositoryTx(tx *gorm.DB) IServiceRepository {
	return &ServiceRepository{BaseRepository: NewBaseRepository[models.Service](tx)}
}

// FindActive returns active services in canonical order. A limit of 0
// means no limit.
func (r *ServiceRepository) FindActive(ctx context.Context, limit int) ([]models.Service, error) {
	var services []models.Service
	query := r.getDB(ctx).Where("is_active = ?", true).Order("\"order\" ASC, created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&services).Error; err != nil {
		configslog.Log.Error("ServiceRepository.FindActive: DB error", zap.Error(err))
		return nil, err
	}
	return services, nil
}

// FindActivePaginated returns one page of active services plus the total
// count. The page number is clamped to the last valid page beforehand.
func (r *ServiceRepository) FindActivePaginated(ctx context.Context, params queryparams.ListParams) ([]models.Service, int64, error) {
	var services []models.Service
	var total int64
	db := r.getDB(ctx)

	query := db.Model(&models.Service{}).Where("is_active = ?", true)
	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("ServiceRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return services, 0, nil
	}

	params.ClampPage(total)
	err := query.Order("\"order\" ASC, created_at ASC").
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&services).Error
	if err != nil {
		configslog.Log.Error("ServiceRepository.Find: DB error", zap.Error(err))
		return nil, total, err
	}
	return services, total, nil
}

var _ IServiceRepository = (*ServiceRepository)(nil)
