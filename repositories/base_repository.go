package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned by every repository when a lookup matches no
// row. Services translate it into their own typed errors.
var ErrNotFound = errors.New("record not found")

// IBaseRepository covers the operations shared by all entities.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Save(ctx context.Context, entity *T) error
}

// BaseRepository implements the shared operations for one entity type.
// Entity repositories embed it and add their own finders.
type BaseRepository[T any] struct {
	db *gorm.DB
}

func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db}
}

// getDB prefers a transaction placed in the context, otherwise binds
// the base connection to the request context.
func (r *BaseRepository[T]) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("cannot create a nil entity")
	}
	return r.getDB(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	if id == uuid.Nil {
		return nil, errors.New("invalid ID")
	}
	var entity T
	err := r.getDB(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) Save(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("cannot save a nil entity")
	}
	return r.getDB(ctx).Save(entity).Error
}

type contextKey string

// txContextKey carries an optional *gorm.DB transaction through a context.
const txContextKey contextKey = "tx"

// searchPattern builds the LIKE pattern for case-insensitive substring
// matching. Columns are lowered in SQL so the comparison stays portable.
func searchPattern(query string) string {
	return "%" + strings.ToLower(query) + "%"
}
