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

type ITestimonialRepository interface {
	IBaseRepository[models.Testimonial]
	FindActivePaginated(ctx context.Context, params queryparams.ListParams) ([]models.Testimonial, int64, error)
	FindFeatured(ctx context.Context, limit int) ([]models.Testimonial, error)
}

type TestimonialRepository struct {
	*BaseRepository[models.Testimonial]
}

func NewTestimonialRepository() ITestimonialRepository {
	return &TestimonialRepository{BaseRepository: NewBaseRepository[models.Testimonial](configsdatabase.GetDB())}
}

func NewTestimonialRepositoryTx(tx *gorm.DB) ITestimonialRepository {
	return &TestimonialRepository{BaseRepository: NewBaseRepository[models.Testimonial](tx)}
}

// FindActivePaginated returns one page of active testimonials, newest
// first.
func (r *TestimonialRepository) FindActivePaginated(ctx context.Context, params queryparams.ListParams) ([]models.Testimonial, int64, error) {
	var testimonials []models.Testimonial
	var total int64
	db := r.getDB(ctx)

	query := db.Model(&models.Testimonial{}).Where("is_active = ?", true)
	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("TestimonialRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return testimonials, 0, nil
	}

	params.ClampPage(total)
	err := query.Order("created_at DESC").
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&testimonials).Error
	if err != nil {
		configslog.Log.Error("TestimonialRepository.Find: DB error", zap.Error(err))
		return nil, total, err
	}
	return testimonials, total, nil
}

// FindFeatured returns the newest featured active testimonials.
func (r *TestimonialRepository) FindFeatured(ctx context.Context, limit int) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.getDB(ctx).
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").Limit(limit).
		Find(&testimonials).Error
	if err != nil {
		configslog.Log.Error("TestimonialRepository.FindFeatured: DB error", zap.Error(err))
		return nil, err
	}
	return testimonials, nil
}

var _ ITestimonialRepository = (*TestimonialRepository)(nil)
