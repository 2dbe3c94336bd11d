package repositories

import (
	"context"

	"nishan.dev/configs/configsdatabase"
	"nishan.dev/configs/configslog"
	"nishan.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ISkillRepository interface {
	IBaseRepository[models.Skill]
	FindActive(ctx context.Context) ([]models.Skill, error)
}

type SkillRepository struct {
	*BaseRepository[models.Skill]
}

func NewSkillRepository() ISkillRepository {
	return &SkillRepository{BaseRepository: NewBaseRepository[models.Skill](configsdatabase.GetDB())}
}

func NewSkillRepositoryTx(tx *gorm.DB) ISkillRepository {
	return &SkillRepository{BaseRepository: NewBaseRepository[models.Skill](tx)}
}

// FindActive returns active skills in canonical order: category, then
// the admin-controlled order field, then name.
func (r *SkillRepository) FindActive(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.getDB(ctx).Where("is_active = ?", true).
		Order("category ASC, \"order\" ASC, name ASC").
		Find(&skills).Error
	if err != nil {
		configslog.Log.Error("SkillRepository.FindActive: DB error", zap.Error(err))
		return nil, err
	}
	return skills, nil
}

var _ ISkillRepository = (*SkillRepository)(nil)
