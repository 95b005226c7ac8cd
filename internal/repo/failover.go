package repo

import (
	"LostFound/internal/model"
	"context"
	"errors"

	"go.uber.org/zap"
)

// FailoverItemRepository — декоратор над двумя бэкендами: все операции идут
// в основной (mongo), при любой его ошибке та же операция один раз повторяется
// против резервного in-memory хранилища. Никакой синхронизации между бэкендами
// нет: записи, созданные при недоступном основном, не появятся в нём после
// восстановления (осознанный split-brain, а не дефект).
type FailoverItemRepository struct {
	primary  ItemRepository
	fallback ItemRepository
	logger   *zap.SugaredLogger
}

// NewFailoverItemRepository собирает декоратор. primary может быть nil —
// тогда все операции сразу идут в fallback (mongo не поднялся на старте).
func NewFailoverItemRepository(primary, fallback ItemRepository, logger *zap.SugaredLogger) *FailoverItemRepository {
	return &FailoverItemRepository{primary: primary, fallback: fallback, logger: logger}
}

func (r *FailoverItemRepository) Create(ctx context.Context, item *model.Item) error {
	if r.primary != nil {
		err := r.primary.Create(ctx, item)
		if err == nil {
			return nil
		}
		r.logger.Warnw("primary backend failed, falling back", "op", "create", "error", err)
	}
	return r.fallback.Create(ctx, item)
}

func (r *FailoverItemRepository) Find(ctx context.Context, f Filter) ([]model.Item, error) {
	if r.primary != nil {
		items, err := r.primary.Find(ctx, f)
		if err == nil {
			return items, nil
		}
		r.logger.Warnw("primary backend failed, falling back", "op", "find", "error", err)
	}
	return r.fallback.Find(ctx, f)
}

func (r *FailoverItemRepository) GetByID(ctx context.Context, id string) (*model.Item, error) {
	if r.primary != nil {
		item, err := r.primary.GetByID(ctx, id)
		if err == nil {
			return item, nil
		}
		// "не найдено" — штатный ответ основного бэкенда, не повод для failover
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		r.logger.Warnw("primary backend failed, falling back", "op", "getById", "error", err)
	}
	return r.fallback.GetByID(ctx, id)
}
