package repo

import (
	"LostFound/internal/model"
	"context"
	"errors"
)

// ErrNotFound — объявление с указанным идентификатором отсутствует в хранилище.
var ErrNotFound = errors.New("item not found")

// Filter — фильтры равенства для выборки объявлений.
// Пустое значение (или категория "all") означает отсутствие фильтра.
type Filter struct {
	Status   string
	Category string
}

// ItemRepository определяет контракт доступа к объявлениям для слоя сервиса.
// Обе реализации (mongo и in-memory) отдают записи одинаковой формы,
// отсортированные по dateReported по убыванию.
type ItemRepository interface {
	// Create сохраняет объявление, назначая ему ID и dateReported.
	Create(ctx context.Context, item *model.Item) error

	// Find возвращает объявления по фильтрам равенства, новые первыми.
	Find(ctx context.Context, f Filter) ([]model.Item, error)

	// GetByID ищет объявление по идентификатору. Если записи нет — ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Item, error)
}

// wantsCategory сообщает, нужно ли применять фильтр по категории.
func (f Filter) wantsCategory() bool {
	return f.Category != "" && f.Category != "all"
}
