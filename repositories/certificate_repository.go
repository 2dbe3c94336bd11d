package repositories

import (
	"context"

	"nishan.dev/configs/configsdatabase"
	"nishan.dev/configs/configslog"
	"nishan.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ICertificateRepository interface {
	IBaseRepository[models.Certificate]
	FindActive(ctx context.Context, limit int) ([]models.Certificate, error)
}

type CertificateRepository struct {
	*BaseRepository[models.Certificate]
}

func NewCertificateRepository() ICertificateRepository {
	return &CertificateRepository{BaseRepository: NewBaseRepository[models.Certificate](configsdatabase.GetDB())}
}

func NewCertificateRepositoryTx(tx *gorm.DB) ICertificateRepository {
	return &CertificateRepository{BaseRepository: NewBaseRepository[models.Certificate](tx)}
}

// FindActive returns active certificates, most recently issued first.
// A limit of 0 means no limit.
func (r *CertificateRepository) FindActive(ctx context.Context, limit int) ([]models.Certificate, error) {
	var certificates []models.Certificate
	query := r.getDB(ctx).Where("is_active = ?", true).Order("issue_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&certificates).Error; err != nil {
		configslog.Log.Error("CertificateRepository.FindActive: DB error", zap.Error(err))
		return nil, err
	}
	return certificates, nil
}

var _ ICertificateRepository = (*CertificateRepository)(nil)
