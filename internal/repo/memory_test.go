package repo

import (
	"LostFound/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// хелпер для создания базового item
func mkItem(title, status, category string) *model.Item {
	return &model.Item{
		Title:        title,
		Description:  "desc",
		Category:     category,
		Status:       status,
		Location:     "somewhere",
		ContactName:  "n",
		ContactEmail: "n@x.com",
		DateOccurred: time.Now().UTC().Add(-24 * time.Hour),
		IsActive:     true,
	}
}

func TestMemoryRepo_Create_AssignsIDAndDateReported(t *testing.T) {
	r := NewMemoryItemRepository()
	ctx := context.Background()

	before := time.Now().UTC()
	it := mkItem("Wallet", model.StatusLost, "Accessories")
	assert.NoError(t, r.Create(ctx, it))

	assert.NotEmpty(t, it.ID)
	assert.False(t, it.DateReported.Before(before))

	// идентификаторы уникальны
	it2 := mkItem("Keys", model.StatusFound, "Keys")
	assert.NoError(t, r.Create(ctx, it2))
	assert.NotEqual(t, it.ID, it2.ID)
	assert.Equal(t, 2, r.Len())
}

func TestMemoryRepo_Find_FiltersAndSorts(t *testing.T) {
	r := NewMemoryItemRepository()
	ctx := context.Background()

	a := mkItem("Phone", model.StatusLost, "Electronics")
	b := mkItem("Umbrella", model.StatusFound, "Other")
	c := mkItem("Charger", model.StatusLost, "Electronics")
	for _, it := range []*model.Item{a, b, c} {
		assert.NoError(t, r.Create(ctx, it))
		time.Sleep(2 * time.Millisecond) // различимые dateReported
	}

	// без фильтров: новые первыми
	all, err := r.Find(ctx, Filter{})
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "Charger", all[0].Title)
	assert.Equal(t, "Phone", all[2].Title)

	// фильтр по статусу
	lost, err := r.Find(ctx, Filter{Status: model.StatusLost})
	assert.NoError(t, err)
	assert.Len(t, lost, 2)
	for _, it := range lost {
		assert.Equal(t, model.StatusLost, it.Status)
	}

	found, err := r.Find(ctx, Filter{Status: model.StatusFound})
	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "Umbrella", found[0].Title)

	// фильтр по категории
	el, err := r.Find(ctx, Filter{Category: "Electronics"})
	assert.NoError(t, err)
	assert.Len(t, el, 2)

	// "all" — отсутствие фильтра по категории
	allCat, err := r.Find(ctx, Filter{Category: "all"})
	assert.NoError(t, err)
	assert.Len(t, allCat, 3)

	// комбинация
	comb, err := r.Find(ctx, Filter{Status: model.StatusFound, Category: "Electronics"})
	assert.NoError(t, err)
	assert.Empty(t, comb)
}

func TestMemoryRepo_GetByID(t *testing.T) {
	r := NewMemoryItemRepository()
	ctx := context.Background()

	it := mkItem("Wallet", model.StatusLost, "Accessories")
	assert.NoError(t, r.Create(ctx, it))

	got, err := r.GetByID(ctx, it.ID)
	assert.NoError(t, err)
	assert.Equal(t, it.ID, got.ID)
	assert.Equal(t, "Wallet", got.Title)

	_, err = r.GetByID(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
