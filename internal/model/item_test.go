package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// хелпер: корректный вход для создания объявления
func validInput() ItemInput {
	return ItemInput{
		Title:        "Black Wallet",
		Description:  "Leather, lost near Main St",
		Category:     "Accessories",
		Status:       StatusLost,
		Location:     "Main St",
		ContactName:  "A. Lee",
		ContactEmail: "a@x.com",
		DateOccurred: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestItemInput_Validate_OK(t *testing.T) {
	in := validInput()
	assert.NoError(t, in.Validate())
}

func TestItemInput_Validate_TrimsFields(t *testing.T) {
	in := validInput()
	in.Title = "  Black Wallet  "
	in.Location = "\tMain St\n"

	assert.NoError(t, in.Validate())
	assert.Equal(t, "Black Wallet", in.Title)
	assert.Equal(t, "Main St", in.Location)
}

func TestItemInput_Validate_RequiredFields(t *testing.T) {
	cases := []struct {
		field string
		mut   func(*ItemInput)
	}{
		{"title", func(in *ItemInput) { in.Title = "" }},
		{"description", func(in *ItemInput) { in.Description = "   " }},
		{"location", func(in *ItemInput) { in.Location = "" }},
		{"contactName", func(in *ItemInput) { in.ContactName = "" }},
		{"contactEmail", func(in *ItemInput) { in.ContactEmail = "" }},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mut(&in)
		err := in.Validate()

		var ve *ValidationError
		assert.ErrorAs(t, err, &ve, tc.field)
		assert.Equal(t, tc.field, ve.Field)
	}
}

func TestItemInput_Validate_BadCategory(t *testing.T) {
	in := validInput()
	in.Category = "Furniture"

	var ve *ValidationError
	assert.ErrorAs(t, in.Validate(), &ve)
	assert.Equal(t, "category", ve.Field)
}

func TestItemInput_Validate_BadStatus(t *testing.T) {
	in := validInput()
	in.Status = "stolen"

	var ve *ValidationError
	assert.ErrorAs(t, in.Validate(), &ve)
	assert.Equal(t, "status", ve.Field)
}

func TestItemInput_Validate_FutureDateOccurred(t *testing.T) {
	in := validInput()
	in.DateOccurred = time.Now().Add(24 * time.Hour)

	var ve *ValidationError
	assert.ErrorAs(t, in.Validate(), &ve)
	assert.Equal(t, "dateOccurred", ve.Field)
}

func TestNewItem_Defaults(t *testing.T) {
	in := validInput()
	item := NewItem(in, "/uploads/x.jpg")

	assert.True(t, item.IsActive)
	assert.Equal(t, "/uploads/x.jpg", item.ImageURL)
	// идентификатор и dateReported назначает бэкенд при сохранении
	assert.Empty(t, item.ID)
	assert.True(t, item.DateReported.IsZero())
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("all"))
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("electronics")) // регистр важен
}
