package repositories

import (
	"context"

	"nishan.dev/configs/configsdatabase"
	"nishan.dev/configs/configslog"
	"nishan.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IFAQRepository interface {
	IBaseRepository[models.FAQ]
	FindActive(ctx context.Context, limit int) ([]models.FAQ, error)
}

type FAQRepository struct {
	*BaseRepository[models.FAQ]
}

func NewFAQRepository() IFAQRepository {
	return &FAQRepository{BaseRepository: NewBaseRepository[models.FAQ](configsdatabase.GetDB())}
}

func NewFAQRepositoryTx(tx *gorm.DB) IFAQRepository {
	return &FAQRepository{BaseRepository: NewBaseRepository[models.FAQ](tx)}
}

// FindActive returns active FAQs in canonical order: category, then the
// admin-controlled order field. A limit of 0 means no limit.
func (r *FAQRepository) FindActive(ctx context.Context, limit int) ([]models.FAQ, error) {
	var faqs []models.FAQ
	query := r.getDB(ctx).Where("is_active = ?", true).
		Order("category ASC, \"order\" ASC, created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&faqs).Error; err != nil {
		configslog.Log.Error("FAQRepository.FindActive: DB error", zap.Error(err))
		return nil, err
	}
	return faqs, nil
}

var _ IFAQRepository = (*FAQRepository)(nil)
