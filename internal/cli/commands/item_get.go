package commands

import (
	"LostFound/internal/cli/api"
	"LostFound/internal/config"
	"LostFound/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type itemGetCmd struct{}

func (itemGetCmd) Name() string { return "item" }
func (itemGetCmd) Description() string {
	return "Показать объявление по идентификатору"
}
func (itemGetCmd) Usage() string { return "item <id>" }

func (itemGetCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/items/" + args[0]
	resp, body, err := api.GetJSON(endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("item %s not found", args[0])
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var item model.Item
	if err := json.Unmarshal(body, &item); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	renderItemDetails(Out, &item)
	return nil
}

func init() { RegisterCmd(itemGetCmd{}) }
