// Package query — клиентский движок фильтрации и сортировки объявлений.
// Чистый редьюсер: кортеж фильтров + полный набор записей -> отображаемый
// список. Повторного запроса к серверу при смене фильтров не происходит.
package query

import (
	"LostFound/internal/model"
	"sort"
	"strings"
)

// Варианты сортировки.
const (
	SortDateReported = "dateReported" // по умолчанию, по убыванию
	SortTitle        = "title"
	SortCategory     = "category"
	SortLocation     = "location"
)

// Filters — текущий выбор пользователя: {status, category, search, sort}.
type Filters struct {
	Status   string
	Category string
	Search   string
	Sort     string
}

// Apply применяет фильтры и сортировку к полному набору записей.
// Исходный срез не модифицируется.
func Apply(items []model.Item, f Filters) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if f.Status != "" && it.Status != f.Status {
			continue
		}
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if f.Search != "" && !matchesSearch(it, f.Search) {
			continue
		}
		out = append(out, it)
	}

	sortItems(out, f.Sort)
	return out
}

// matchesSearch — регистронезависимый поиск подстроки по
// title/description/location/category (на клиенте категория тоже ищется).
func matchesSearch(it model.Item, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(it.Title), term) ||
		strings.Contains(strings.ToLower(it.Description), term) ||
		strings.Contains(strings.ToLower(it.Location), term) ||
		strings.Contains(strings.ToLower(it.Category), term)
}

func sortItems(items []model.Item, by string) {
	switch by {
	case SortTitle:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Title < items[j].Title })
	case SortCategory:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Category < items[j].Category })
	case SortLocation:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Location < items[j].Location })
	default:
		// неизвестное значение трактуем как сортировку по умолчанию
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].DateReported.After(items[j].DateReported)
		})
	}
}
