package model

import (
	"fmt"
	"strings"
	"time"
)

// Статусы объявления.
const (
	StatusLost  = "lost"
	StatusFound = "found"
)

// Categories — допустимые категории предметов.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Accessories",
	"Documents",
	"Keys",
	"Bags",
	"Books",
	"Other",
}

// Item — объявление о потерянной или найденной вещи.
// ID — канонический opaque-строковый идентификатор (uuid) в обоих бэкендах.
type Item struct {
	ID           string    `bson:"_id,omitempty" json:"_id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	Category     string    `bson:"category" json:"category"`
	Status       string    `bson:"status" json:"status"`
	Location     string    `bson:"location" json:"location"`
	ContactName  string    `bson:"contactName" json:"contactName"`
	ContactEmail string    `bson:"contactEmail" json:"contactEmail"`
	ContactPhone string    `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	ImageURL     string    `bson:"imageUrl" json:"imageUrl"`
	DateReported time.Time `bson:"dateReported" json:"dateReported"`
	DateOccurred time.Time `bson:"dateOccurred" json:"dateOccurred"`
	IsActive     bool      `bson:"isActive" json:"isActive"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ItemInput — данные формы создания объявления до валидации.
type ItemInput struct {
	Title        string
	Description  string
	Category     string
	Status       string
	Location     string
	ContactName  string
	ContactEmail string
	ContactPhone string
	DateOccurred time.Time
}

// ValidationError — ошибка валидации обязательного поля.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidCategory проверяет принадлежность категории к допустимому набору.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// ValidStatus проверяет статус.
func ValidStatus(s string) bool {
	return s == StatusLost || s == StatusFound
}

// Validate подрезает текстовые поля и проверяет обязательные.
// Возвращает первую найденную *ValidationError.
func (in *ItemInput) Validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.ContactName = strings.TrimSpace(in.ContactName)
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)
	in.ContactPhone = strings.TrimSpace(in.ContactPhone)

	required := []struct {
		name, value string
	}{
		{"title", in.Title},
		{"description", in.Description},
		{"location", in.Location},
		{"contactName", in.ContactName},
		{"contactEmail", in.ContactEmail},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.name, Reason: "required"}
		}
	}

	if !ValidCategory(in.Category) {
		return &ValidationError{Field: "category", Reason: "must be one of: " + strings.Join(Categories, ", ")}
	}
	if !ValidStatus(in.Status) {
		return &ValidationError{Field: "status", Reason: "must be 'lost' or 'found'"}
	}
	if in.DateOccurred.IsZero() {
		return &ValidationError{Field: "dateOccurred", Reason: "required"}
	}
	if in.DateOccurred.After(time.Now()) {
		return &ValidationError{Field: "dateOccurred", Reason: "must not be in the future"}
	}
	return nil
}

// NewItem собирает Item из провалидированного входа.
// dateReported/createdAt/updatedAt проставляет бэкенд при сохранении.
func NewItem(in ItemInput, imageURL string) *Item {
	return &Item{
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		Status:       in.Status,
		Location:     in.Location,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		ImageURL:     imageURL,
		DateOccurred: in.DateOccurred,
		IsActive:     true,
	}
}
