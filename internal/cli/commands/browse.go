package commands

import (
	"LostFound/internal/config"
	"LostFound/internal/model"
	"LostFound/internal/query"
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
)

// browseCmd — интерактивный режим: полный набор объявлений загружается один
// раз, дальше смена фильтров пересчитывает отображение локально, без
// обращений к серверу. Ввод поиска дебаунсится, как в браузерном фронтенде.
type browseCmd struct{}

func (browseCmd) Name() string { return "browse" }
func (browseCmd) Description() string {
	return "Интерактивный просмотр с фильтрами"
}
func (browseCmd) Usage() string { return "browse" }

// In — источник команд интерактивного режима (в тестах переназначается).
var In = func() *bufio.Scanner { return bufio.NewScanner(os.Stdin) }

func (browseCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	all, err := fetchItems(cfg.ServerURL)
	if err != nil {
		return err
	}

	session := newBrowseSession(all)
	session.render()

	fmt.Fprintln(Out, `Commands: search <s> | status lost|found|all | category <c> | sort <поле> | view grid|list | reset | quit`)

	deb := query.NewDebouncer(query.DefaultDebounce)
	defer deb.Stop()

	scanner := In()
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "quit", "q":
			return nil
		case "search":
			// пересчёт только после паузы в наборе
			deb.Trigger(func() {
				session.setSearch(arg)
				session.render()
			})
			continue
		case "status":
			if arg == "all" {
				arg = ""
			}
			session.setStatus(arg)
		case "category":
			if arg == "all" {
				arg = ""
			}
			session.setCategory(arg)
		case "sort":
			session.setSort(arg)
		case "view":
			session.setView(arg)
		case "reset":
			session.reset()
		case "":
			continue
		default:
			fmt.Fprintf(Out, "Unknown command: %s\n", cmd)
			continue
		}
		session.render()
	}
	return scanner.Err()
}

// browseSession хранит кортеж фильтров и полный набор записей.
// Мьютекс — отрисовка может прийти из таймера дебаунсера.
type browseSession struct {
	mu      sync.Mutex
	all     []model.Item
	filters query.Filters
	view    string
}

func newBrowseSession(all []model.Item) *browseSession {
	return &browseSession{all: all, filters: query.Filters{Sort: query.SortDateReported}, view: ViewGrid}
}

func (s *browseSession) setSearch(v string)   { s.mu.Lock(); s.filters.Search = v; s.mu.Unlock() }
func (s *browseSession) setStatus(v string)   { s.mu.Lock(); s.filters.Status = v; s.mu.Unlock() }
func (s *browseSession) setCategory(v string) { s.mu.Lock(); s.filters.Category = v; s.mu.Unlock() }
func (s *browseSession) setSort(v string)     { s.mu.Lock(); s.filters.Sort = v; s.mu.Unlock() }

func (s *browseSession) setView(v string) {
	s.mu.Lock()
	if v == ViewList || v == ViewGrid {
		s.view = v
	}
	s.mu.Unlock()
}

func (s *browseSession) reset() {
	s.mu.Lock()
	s.filters = query.Filters{Sort: query.SortDateReported}
	s.view = ViewGrid
	s.mu.Unlock()
}

func (s *browseSession) render() {
	s.mu.Lock()
	filtered := query.Apply(s.all, s.filters)
	view := s.view
	s.mu.Unlock()
	renderItems(Out, filtered, view)
}

func init() { RegisterCmd(browseCmd{}) }
