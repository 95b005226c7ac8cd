package commands

import (
	"LostFound/internal/model"
	"fmt"
	"io"
	"strings"
)

// Режимы отображения списка.
const (
	ViewGrid = "grid"
	ViewList = "list"
)

// renderItems печатает отфильтрованный список в выбранном режиме.
func renderItems(w io.Writer, items []model.Item, view string) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items found")
		return
	}
	if view == ViewList {
		renderList(w, items)
	} else {
		renderGrid(w, items)
	}
	fmt.Fprintf(w, "Total: %d\n", len(items))
}

// renderGrid — "карточки": блок на объявление.
func renderGrid(w io.Writer, items []model.Item) {
	for _, it := range items {
		fmt.Fprintf(w, "┌ %s [%s]\n", it.Title, strings.ToUpper(it.Status))
		fmt.Fprintf(w, "│ %s\n", it.Category)
		fmt.Fprintf(w, "│ %s\n", truncate(it.Description, 70))
		fmt.Fprintf(w, "│ @ %s\n", it.Location)
		fmt.Fprintf(w, "└ reported %s  id=%s\n\n", it.DateReported.Format("2006-01-02"), it.ID)
	}
}

// renderList — строка на объявление.
func renderList(w io.Writer, items []model.Item) {
	for _, it := range items {
		fmt.Fprintf(w, "- [%s] %-30s %-12s %-20s %s\n",
			it.Status, truncate(it.Title, 30), it.Category,
			truncate(it.Location, 20), it.DateReported.Format("2006-01-02"))
	}
}

// renderItemDetails печатает полную карточку одного объявления.
func renderItemDetails(w io.Writer, it *model.Item) {
	fmt.Fprintf(w, "%s [%s]\n", it.Title, strings.ToUpper(it.Status))
	fmt.Fprintf(w, "Category:  %s\n", it.Category)
	fmt.Fprintf(w, "Location:  %s\n", it.Location)
	fmt.Fprintf(w, "Details:   %s\n", it.Description)
	fmt.Fprintf(w, "Contact:   %s <%s>", it.ContactName, it.ContactEmail)
	if it.ContactPhone != "" {
		fmt.Fprintf(w, ", %s", it.ContactPhone)
	}
	fmt.Fprintln(w)
	if it.ImageURL != "" {
		fmt.Fprintf(w, "Image:     %s\n", it.ImageURL)
	}
	fmt.Fprintf(w, "Occurred:  %s\n", it.DateOccurred.Format("2006-01-02"))
	fmt.Fprintf(w, "Reported:  %s\n", it.DateReported.Format("2006-01-02 15:04"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
