package service

import (
	"LostFound/internal/model"
	"LostFound/internal/repo"
	"context"
	"strings"
)

// ItemService инкапсулирует бизнес-логику работы с объявлениями:
// валидация входа, выбор бэкенда через failover-репозиторий,
// текстовый пост-фильтр и ограничение размера выдачи.
type ItemService struct {
	repo repo.ItemRepository
}

func NewItemService(r repo.ItemRepository) *ItemService {
	return &ItemService{repo: r}
}

// ListQuery — параметры выборки списка объявлений.
type ListQuery struct {
	Status   string
	Category string
	Search   string
	Limit    int
}

// Create валидирует вход и сохраняет объявление.
// При ошибке валидации запись не попадает ни в один бэкенд.
func (s *ItemService) Create(ctx context.Context, in model.ItemInput, imageURL string) (*model.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	item := model.NewItem(in, imageURL)
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List возвращает объявления: фильтры равенства уходят в бэкенд,
// текстовый поиск ВСЕГДА применяется здесь, поверх ответа любого бэкенда.
func (s *ItemService) List(ctx context.Context, q ListQuery) ([]model.Item, error) {
	items, err := s.repo.Find(ctx, repo.Filter{Status: q.Status, Category: q.Category})
	if err != nil {
		return nil, err
	}

	if q.Search != "" {
		items = searchFilter(items, q.Search)
	}
	if q.Limit > 0 && len(items) > q.Limit {
		items = items[:q.Limit]
	}
	return items, nil
}

// GetByID возвращает объявление или repo.ErrNotFound.
func (s *ItemService) GetByID(ctx context.Context, id string) (*model.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// searchFilter — регистронезависимый поиск подстроки
// по title/description/location.
func searchFilter(items []model.Item, term string) []model.Item {
	term = strings.ToLower(term)
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), term) ||
			strings.Contains(strings.ToLower(it.Description), term) ||
			strings.Contains(strings.ToLower(it.Location), term) {
			out = append(out, it)
		}
	}
	return out
}
