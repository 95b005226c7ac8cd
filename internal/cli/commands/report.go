package commands

import (
	"LostFound/internal/cli/api"
	"LostFound/internal/config"
	"LostFound/internal/model"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"strings"
)

type reportCmd struct{}

func (reportCmd) Name() string { return "report" }
func (reportCmd) Description() string {
	return "Отправить объявление о потерянной/найденной вещи"
}
func (reportCmd) Usage() string {
	return "report -title <t> -description <d> -category <c> -status lost|found -location <l> -name <n> -email <e> -date YYYY-MM-DD [-phone <p>] [-image <файл>]"
}

func (reportCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(Out)
	title := fs.String("title", "", "название предмета")
	description := fs.String("description", "", "описание")
	category := fs.String("category", "", "категория")
	status := fs.String("status", "", "lost или found")
	location := fs.String("location", "", "место")
	name := fs.String("name", "", "контактное имя")
	email := fs.String("email", "", "контактный email")
	phone := fs.String("phone", "", "контактный телефон")
	date := fs.String("date", "", "дата происшествия, YYYY-MM-DD")
	image := fs.String("image", "", "путь к файлу изображения")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	fields := map[string]string{
		"title":        *title,
		"description":  *description,
		"category":     *category,
		"status":       *status,
		"location":     *location,
		"contactName":  *name,
		"contactEmail": *email,
		"contactPhone": *phone,
		"dateOccurred": *date,
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/items"
	resp, body, err := api.PostMultipart(endpoint, fields, "image", *image)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var item model.Item
	if err := json.Unmarshal(body, &item); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Created item %s\n", item.ID)
	renderItemDetails(Out, &item)
	return nil
}

func init() { RegisterCmd(reportCmd{}) }
