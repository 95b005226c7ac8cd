package repo

import (
	"LostFound/internal/model"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryItemRepository — резервное хранилище объявлений в памяти процесса.
// Упорядоченный append-only список, линейный поиск. Экземпляр создаётся явно
// и передаётся в failover-репозиторий: никакого глобального состояния.
type MemoryItemRepository struct {
	mu    sync.RWMutex
	items []model.Item
}

// NewMemoryItemRepository создаёт пустое in-memory хранилище.
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{}
}

func (r *MemoryItemRepository) Create(_ context.Context, item *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	item.ID = uuid.NewString()
	item.DateReported = now
	item.CreatedAt = now
	item.UpdatedAt = now

	r.items = append(r.items, *item)
	return nil
}

func (r *MemoryItemRepository) Find(_ context.Context, f Filter) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]model.Item, 0, len(r.items))
	for _, it := range r.items {
		if f.Status != "" && it.Status != f.Status {
			continue
		}
		if f.wantsCategory() && it.Category != f.Category {
			continue
		}
		filtered = append(filtered, it)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].DateReported.After(filtered[j].DateReported)
	})
	return filtered, nil
}

func (r *MemoryItemRepository) GetByID(_ context.Context, id string) (*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.ID == id {
			item := it
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

// Len возвращает число сохранённых записей (используется в тестах).
func (r *MemoryItemRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
