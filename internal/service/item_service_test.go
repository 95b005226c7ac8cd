package service

import (
	"LostFound/internal/model"
	"LostFound/internal/repo"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Minimal mocks
type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockItemRepo) Find(ctx context.Context, f repo.Filter) ([]model.Item, error) {
	args := m.Called(ctx, f)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

func validInput() model.ItemInput {
	return model.ItemInput{
		Title:        "Black Wallet",
		Description:  "Leather, lost near Main St",
		Category:     "Accessories",
		Status:       model.StatusLost,
		Location:     "Main St",
		ContactName:  "A. Lee",
		ContactEmail: "a@x.com",
		DateOccurred: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestItemService_Create_OK(t *testing.T) {
	mr := &mockItemRepo{}
	mr.On("Create", mock.Anything, mock.AnythingOfType("*model.Item")).Return(nil)
	s := NewItemService(mr)

	item, err := s.Create(context.Background(), validInput(), "")
	assert.NoError(t, err)
	assert.True(t, item.IsActive)
	mr.AssertNumberOfCalls(t, "Create", 1)
}

func TestItemService_Create_InvalidInput_NoBackendTouched(t *testing.T) {
	mr := &mockItemRepo{}
	s := NewItemService(mr)

	in := validInput()
	in.Category = "Vehicles"

	_, err := s.Create(context.Background(), in, "")
	var ve *model.ValidationError
	assert.ErrorAs(t, err, &ve)
	// при ошибке валидации ни один бэкенд не получает запись
	mr.AssertNotCalled(t, "Create")
}

func TestItemService_List_SearchPostFilter(t *testing.T) {
	items := []model.Item{
		{Title: "Black Wallet", Description: "Leather", Location: "Main St"},
		{Title: "Umbrella", Description: "Blue with WALLET print", Location: "Park"},
		{Title: "Phone", Description: "iPhone", Location: "wallet street"},
		{Title: "Keys", Description: "Car keys", Location: "Garage"},
	}
	mr := &mockItemRepo{}
	mr.On("Find", mock.Anything, repo.Filter{}).Return(items, nil)
	s := NewItemService(mr)

	// поиск регистронезависим и матчит подстроки title/description/location
	got, err := s.List(context.Background(), ListQuery{Search: "WaLLeT"})
	assert.NoError(t, err)
	assert.Len(t, got, 3)
	for _, it := range got {
		assert.NotEqual(t, "Keys", it.Title)
	}
}

func TestItemService_List_PassesEqualityFiltersToRepo(t *testing.T) {
	mr := &mockItemRepo{}
	mr.On("Find", mock.Anything, repo.Filter{Status: "lost", Category: "Keys"}).
		Return([]model.Item{}, nil)
	s := NewItemService(mr)

	_, err := s.List(context.Background(), ListQuery{Status: "lost", Category: "Keys"})
	assert.NoError(t, err)
	mr.AssertExpectations(t)
}

func TestItemService_List_Limit(t *testing.T) {
	items := make([]model.Item, 5)
	for i := range items {
		items[i] = model.Item{Title: "t"}
	}
	mr := &mockItemRepo{}
	mr.On("Find", mock.Anything, mock.Anything).Return(items, nil)
	s := NewItemService(mr)

	got, err := s.List(context.Background(), ListQuery{Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	// нулевой лимит — без усечения
	got, err = s.List(context.Background(), ListQuery{})
	assert.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestItemService_GetByID_NotFoundPassthrough(t *testing.T) {
	mr := &mockItemRepo{}
	mr.On("GetByID", mock.Anything, "nope").Return(nil, repo.ErrNotFound)
	s := NewItemService(mr)

	_, err := s.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
