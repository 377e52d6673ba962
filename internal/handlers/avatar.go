package handlers

import (
	"NoteBoard/internal/config"
	"NoteBoard/internal/middleware"
	"NoteBoard/internal/service"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AvatarHandler обрабатывает загрузку и выдачу аватаров.
type AvatarHandler struct {
	AvatarService *service.AvatarService
	Logger        *zap.SugaredLogger
	Config        *config.Config
}

// NewAvatarHandler создаёт хендлер аватаров
func NewAvatarHandler(avatarService *service.AvatarService, logger *zap.SugaredLogger, cfg *config.Config) *AvatarHandler {
	return &AvatarHandler{AvatarService: avatarService, Logger: logger, Config: cfg}
}

// ListNames отдаёт имена всех сохранённых блобов.
func (h *AvatarHandler) ListNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.AvatarService.ListNames(r.Context())
	if err != nil {
		h.Logger.Errorw("avatars list: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"names": names})
}

// Upload принимает multipart-форму с полем file и возвращает имя блоба.
func (h *AvatarHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	maxSize := int64(h.Config.AvatarMaxSizeMB) * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+1)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		h.Logger.Warnw("avatar upload: bad multipart form", "user_id", userID, "error", err)
		http.Error(w, "avatar exceeds size limit", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.Logger.Errorw("avatar upload: read file", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	contentType := header.Header.Get("Content-Type")
	name, err := h.AvatarService.Upload(r.Context(), userID, header.Filename, contentType, content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAvatarTooLarge):
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		case errors.Is(err, service.ErrAvatarBadType):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.Logger.Errorw("avatar upload: service error", "user_id", userID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"name": name})
}

// Download отдаёт блоб по имени с его Content-Type.
func (h *AvatarHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	a, err := h.AvatarService.Download(r.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrAvatarNotFound) {
			http.Error(w, "avatar not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("avatar download: service error", "name", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(a.Content)))
	_, _ = w.Write(a.Content)
}
