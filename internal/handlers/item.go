package handlers

import (
	"LostFound/internal/config"
	"LostFound/internal/model"
	"LostFound/internal/repo"
	"LostFound/internal/service"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ItemHandler обрабатывает CRUD-запросы по объявлениям.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

// допустимые MIME-типы изображений
var allowedImageMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// List обрабатывает GET /api/items?status=&category=&search=&limit=
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := service.ListQuery{
		Status:   r.URL.Query().Get("status"),
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			q.Limit = n
		}
	}

	items, err := h.ItemService.List(r.Context(), q)
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Create обрабатывает POST /api/items (multipart/form-data с опциональным image).
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	// Лимит общего тела запроса: изображение плюс текстовые поля
	maxBody := int64(h.Config.UploadMaxMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(maxBody); err != nil {
		h.Logger.Warnw("Create: invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form or payload too large")
		return
	}

	in := model.ItemInput{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Category:     r.FormValue("category"),
		Status:       r.FormValue("status"),
		Location:     r.FormValue("location"),
		ContactName:  r.FormValue("contactName"),
		ContactEmail: r.FormValue("contactEmail"),
		ContactPhone: r.FormValue("contactPhone"),
	}
	if raw := r.FormValue("dateOccurred"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			h.Logger.Warnw("Create: invalid dateOccurred", "value", raw, "error", err)
			writeError(w, http.StatusBadRequest, "dateOccurred: invalid date")
			return
		}
		in.DateOccurred = t
	}

	imageURL := ""
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		imageURL, err = h.saveImage(file, header)
		if err != nil {
			h.Logger.Warnw("Create: image rejected", "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	item, err := h.ItemService.Create(r.Context(), in, imageURL)
	if err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Error())
			return
		}
		h.Logger.Errorw("Create: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// GetByID обрабатывает GET /api/items/{id}
func (h *ItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.ItemService.GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		h.Logger.Errorw("GetByID: service error", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// saveImage проверяет MIME и размер файла и сохраняет его в каталог загрузок.
// Возвращает путь вида /uploads/<имя>.
func (h *ItemHandler) saveImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	mime := header.Header.Get("Content-Type")
	if !allowedImageMIME[mime] {
		return "", errors.New("image must be JPEG, PNG, WebP or GIF")
	}
	maxSize := int64(h.Config.UploadMaxMB) * 1024 * 1024
	if header.Size > maxSize {
		return "", errors.New("image exceeds size limit")
	}

	if err := os.MkdirAll(h.Config.UploadDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(h.Config.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// parseDate принимает дату формы (YYYY-MM-DD) или полный RFC3339.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
