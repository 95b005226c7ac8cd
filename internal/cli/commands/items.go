package commands

import (
	"LostFound/internal/cli/api"
	"LostFound/internal/config"
	"LostFound/internal/model"
	"LostFound/internal/query"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"strings"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать объявления с локальной фильтрацией"
}
func (itemsCmd) Usage() string {
	return "items [-status lost|found] [-category <c>] [-search <s>] [-sort <поле>] [-view grid|list]"
}

func (itemsCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("items", flag.ContinueOnError)
	fs.SetOutput(Out)
	status := fs.String("status", "", "фильтр по статусу")
	category := fs.String("category", "", "фильтр по категории")
	search := fs.String("search", "", "поиск подстроки")
	sortBy := fs.String("sort", query.SortDateReported, "сортировка: dateReported|title|category|location")
	view := fs.String("view", ViewGrid, "режим отображения: grid|list")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	// Полный набор забирается один раз, фильтры применяются локально
	all, err := fetchItems(cfg.ServerURL)
	if err != nil {
		return err
	}

	filtered := query.Apply(all, query.Filters{
		Status:   *status,
		Category: *category,
		Search:   *search,
		Sort:     *sortBy,
	})
	renderItems(Out, filtered, *view)
	return nil
}

// fetchItems загружает полный список объявлений с сервера.
func fetchItems(serverURL string) ([]model.Item, error) {
	endpoint := strings.TrimRight(serverURL, "/") + "/api/items"
	resp, body, err := api.GetJSON(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var items []model.Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return items, nil
}

func init() { RegisterCmd(itemsCmd{}) }
