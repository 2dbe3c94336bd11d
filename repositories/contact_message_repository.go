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

type IContactMessageRepository interface {
	IBaseRepository[models.ContactMessage]
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.ContactMessage, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type ContactMessageRepository struct {
	*BaseRepository[models.ContactMessage]
}

func NewContactMessageRepository() IContactMessageRepository {
	return &ContactMessageRepository{BaseRepository: NewBaseRepository[models.ContactMessage](configsdatabase.GetDB())}
}

func NewContactMessageRepositoryTx(tx *gorm.DB) IContactMessageRepository {
	return &ContactMessageRepository{BaseRepository: NewBaseRepository[models.ContactMessage](tx)}
}

// FindAllPaginated returns one page of messages, newest first,
// optionally narrowed to a status code via the Category filter.
func (r *ContactMessageRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.ContactMessage, int64, error) {
	var messages []models.ContactMessage
	var total int64
	db := r.getDB(ctx)

	query := db.Model(&models.ContactMessage{})
	if params.Category != "" {
		query = query.Where("status = ?", params.Category)
	}
	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("ContactMessageRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return messages, 0, nil
	}

	params.ClampPage(total)
	err := query.Order("created_at DESC").
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&messages).Error
	if err != nil {
		configslog.Log.Error("ContactMessageRepository.Find: DB error", zap.Error(err))
		return nil, total, err
	}
	return messages, total, nil
}

// UpdateStatus sets the message status. Transitions are not constrained;
// administrators may move a message between any two statuses.
func (r *ContactMessageRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if id == uuid.Nil {
		return errors.New("invalid message ID")
	}
	result := r.getDB(ctx).Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		configslog.Log.Error("ContactMessageRepository.UpdateStatus: DB error", zap.String("id", id.String()), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IContactMessageRepository = (*ContactMessageRepository)(nil)
