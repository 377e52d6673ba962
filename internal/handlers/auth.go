package handlers

import (
	"NoteBoard/internal/config"
	"NoteBoard/internal/middleware"
	"NoteBoard/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// AuthHandler обрабатывает вход по magic link, OAuth-обмен и выход.
type AuthHandler struct {
	AuthService *service.AuthService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewAuthHandler создаёт хендлер аутентификации
func NewAuthHandler(authService *service.AuthService, logger *zap.SugaredLogger, cfg *config.Config) *AuthHandler {
	return &AuthHandler{AuthService: authService, Logger: logger, Config: cfg}
}

type MagicLinkRequest struct {
	Email string `json:"email"`
}

// RequestMagicLink выпускает одноразовую ссылку для входа.
// Ответ всегда 202: существует адрес или нет — наружу не сообщаем.
func (h *AuthHandler) RequestMagicLink(w http.ResponseWriter, r *http.Request) {
	var req MagicLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("magiclink: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.AuthService.RequestMagicLink(r.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrEmailRequired) {
			http.Error(w, "valid email is required", http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("magiclink: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "link sent"})
}

type VerifyRequest struct {
	Token string `json:"token"`
}

// Verify обменивает одноразовый токен на cookie сессии.
// Токен принимаем и в JSON-теле, и в query (переход по ссылке из письма).
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" && r.Body != nil {
		var req VerifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			token = req.Token
		}
	}
	if token == "" {
		http.Error(w, "missing token", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.VerifyMagicLink(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenExpired), errors.Is(err, service.ErrTokenInvalid):
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
		default:
			h.Logger.Errorw("verify: service error", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	h.issueSession(w, user.ID, user.Email)
}

type OAuthRequest struct {
	Provider string `json:"provider"`
	Email    string `json:"email"`
}

// OAuth провижинит пользователя, подтверждённого внешним провайдером,
// и сразу выдаёт сессию.
func (h *AuthHandler) OAuth(w http.ResponseWriter, r *http.Request) {
	var req OAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.ExchangeOAuth(r.Context(), req.Provider, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrEmailRequired) {
			http.Error(w, "valid email is required", http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("oauth: service error", "provider", req.Provider, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.issueSession(w, user.ID, user.Email)
}

// Logout сбрасывает cookie сессии.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Session возвращает текущую сессию — кто действует сейчас.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	email, _ := middleware.GetUserEmailFromContext(r.Context())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"user_id": userID,
		"email":   email,
	})
}

func (h *AuthHandler) issueSession(w http.ResponseWriter, userID, email string) {
	if err := middleware.SetLoginCookie(w, userID, email, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("failed to issue session cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"user_id": userID,
		"email":   email,
	})
}
