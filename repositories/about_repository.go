package repositories

import (
	"context"
	"errors"

	"nishan.dev/configs/configsdatabase"
	"nishan.dev/configs/configslog"
	"nishan.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IAboutRepository looks up the site owner's profile. "The" profile is
// the oldest active row; inactive rows are drafts kept by the admin.
type IAboutRepository interface {
	IBaseRepository[models.About]
	FindActive(ctx context.Context) (*models.About, error)
}

type AboutRepository struct {
	*BaseRepository[models.About]
}

func NewAboutRepository() IAboutRepository {
	return &AboutRepository{BaseRepository: NewBaseRepository[models.About](configsdatabase.GetDB())}
}

func NewAboutRepositoryTx(tx *gorm.DB) IAboutRepository {
	return &AboutRepository{BaseRepository: NewBaseRepository[models.About](tx)}
}

// FindActive returns the first active About record.
func (r *AboutRepository) FindActive(ctx context.Context) (*models.About, error) {
	var about models.About
	err := r.getDB(ctx).Where("is_active = ?", true).Order("created_at ASC").First(&about).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AboutRepository.FindActive: DB error", zap.Error(err))
		return nil, err
	}
	return &about, nil
}

var _ IAboutRepository = (*AboutRepository)(nil)
