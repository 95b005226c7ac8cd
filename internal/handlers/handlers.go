package handlers

import (
	"LostFound/internal/config"
	"LostFound/internal/middleware"
	"LostFound/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithCORS)

	// Handlers
	itemHandler := NewItemHandler(itemService, logger, config)

	// Item routes
	r.Get("/api/items", itemHandler.List)
	r.Post("/api/items", itemHandler.Create)
	r.Get("/api/items/{id}", itemHandler.GetByID)

	// Загруженные изображения отдаются как статика
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.UploadDir)))
	r.Get("/uploads/*", uploads.ServeHTTP)

	r.Get("/health-check", healthCheck)

	return &Handler{Router: r}
}

// healthCheck подтверждает, что сервер жив.
func healthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Server is running",
	})
}

// writeJSON сериализует ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError отдаёт JSON-ошибку вида {"error": "..."}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
