package handlers

import (
	"NoteBoard/internal/middleware"
	"NoteBoard/internal/model"
	"NoteBoard/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ProfileHandler обрабатывает чтение и сохранение профиля.
type ProfileHandler struct {
	ProfileService *service.ProfileService
	Logger         *zap.SugaredLogger
}

// NewProfileHandler создаёт хендлер профиля
func NewProfileHandler(profileService *service.ProfileService, logger *zap.SugaredLogger) *ProfileHandler {
	return &ProfileHandler{ProfileService: profileService, Logger: logger}
}

// ProfileDTO — профиль в HTTP-ответах. Website и AvatarRef опциональны.
type ProfileDTO struct {
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	Website   *string `json:"website,omitempty"`
	AvatarRef *string `json:"avatar_ref,omitempty"`
	UpdatedAt string  `json:"updated_at"`
}

func profileToDTO(p *model.Profile) ProfileDTO {
	dto := ProfileDTO{
		UserID:    p.UserID,
		Username:  p.Username,
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if p.Website != "" {
		dto.Website = &p.Website
	}
	if p.AvatarRef != "" {
		dto.AvatarRef = &p.AvatarRef
	}
	return dto
}

// Get чтение собственного профиля
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	p, err := h.ProfileService.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("profile get: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(profileToDTO(p))
}

// UpsertProfileRequest — тело запроса сохранения. nil-поле не трогает
// текущее значение, пустая строка очищает.
type UpsertProfileRequest struct {
	Username  string  `json:"username"`
	Website   *string `json:"website,omitempty"`
	AvatarRef *string `json:"avatar_ref,omitempty"`
}

// Upsert сохранение профиля: создание и обновление не различаются
func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("profile upsert: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	p, err := h.ProfileService.Upsert(r.Context(), userID, service.ProfileUpdate{
		Username:  req.Username,
		Website:   req.Website,
		AvatarRef: req.AvatarRef,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameTooShort) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("profile upsert: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(profileToDTO(p))
}
