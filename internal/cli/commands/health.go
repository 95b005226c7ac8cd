package commands

import (
	"LostFound/internal/cli/api"
	"LostFound/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type healthCmd struct{}

func (healthCmd) Name() string { return "health" }
func (healthCmd) Description() string {
	return "Проверить доступность сервера"
}
func (healthCmd) Usage() string { return "health" }

func (healthCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/health-check"
	resp, body, err := api.GetJSON(endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var hr healthResponse
	if err := json.Unmarshal(body, &hr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Status:", hr.Status)
	return nil
}

func init() { RegisterCmd(healthCmd{}) }
