package handlers

import (
	"NoteBoard/internal/middleware"
	"NoteBoard/internal/model"
	"NoteBoard/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NoteHandler обрабатывает CRUD заметок.
type NoteHandler struct {
	NoteService *service.NoteService
	Logger      *zap.SugaredLogger
}

// NewNoteHandler создаёт хендлер заметок
func NewNoteHandler(noteService *service.NoteService, logger *zap.SugaredLogger) *NoteHandler {
	return &NoteHandler{NoteService: noteService, Logger: logger}
}

// NoteDTO — заметка в списке вместе с владельцем и правами действующего
// пользователя. Body опционально: nil — тело скрыто или отсутствует.
type NoteDTO struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Note           *string `json:"note,omitempty"`
	NoteType       int     `json:"note_type"`
	UserID         string  `json:"userid"`
	OwnerUsername  string  `json:"owner_username"`
	OwnerAvatarRef string  `json:"owner_avatar_ref,omitempty"`
	UpdatedAt      string  `json:"updated_at"`
	CanEdit        bool    `json:"can_edit"`
	CanDelete      bool    `json:"can_delete"`
}

// NoteRequest — тело создания/обновления заметки.
type NoteRequest struct {
	Title    string `json:"title"`
	Note     string `json:"note"`
	NoteType int    `json:"note_type"`
}

// List отдаёт все заметки по убыванию updated_at. Доступно и анонимно:
// права в ответе тогда все false.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	notes, err := h.NoteService.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("notes list: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]NoteDTO, 0, len(notes))
	for _, n := range notes {
		dto := NoteDTO{
			ID:             n.ID,
			Title:          n.Title,
			NoteType:       int(n.NoteType),
			UserID:         n.UserID,
			OwnerUsername:  n.OwnerUsername,
			OwnerAvatarRef: n.OwnerAvatarRef,
			UpdatedAt:      n.UpdatedAt.UTC().Format(time.RFC3339),
			CanEdit:        n.CanEdit,
			CanDelete:      n.CanDelete,
		}
		if n.Note != "" {
			body := n.Note
			dto.Note = &body
		}
		out = append(out, dto)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// Create вставляет заметку и возвращает присвоенный ID
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("note create: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	n, err := h.NoteService.Create(r.Context(), userID, service.NoteInput{
		Title:    req.Title,
		Note:     req.Note,
		NoteType: model.NoteType(req.NoteType),
	})
	if err != nil {
		h.writeNoteError(w, err, userID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":         n.ID,
		"updated_at": n.UpdatedAt.UTC().Format(time.RFC3339),
	})
}

// Update правит существующую заметку
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("note update: invalid request body", "id", id, "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	n, err := h.NoteService.Update(r.Context(), userID, id, service.NoteInput{
		Title:    req.Title,
		Note:     req.Note,
		NoteType: model.NoteType(req.NoteType),
	})
	if err != nil {
		h.writeNoteError(w, err, userID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":         n.ID,
		"updated_at": n.UpdatedAt.UTC().Format(time.RFC3339),
	})
}

// Delete удаляет заметку владельца
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return
	}

	if err := h.NoteService.Delete(r.Context(), userID, id); err != nil {
		h.writeNoteError(w, err, userID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *NoteHandler) writeNoteError(w http.ResponseWriter, err error, userID string) {
	switch {
	case errors.Is(err, service.ErrTitleRequired), errors.Is(err, service.ErrBadNoteType):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, service.ErrNoteNotFound):
		http.Error(w, "note not found", http.StatusNotFound)
	default:
		h.Logger.Errorw("note: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
