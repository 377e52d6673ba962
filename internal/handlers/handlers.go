package handlers

import (
	"NoteBoard/internal/config"
	"NoteBoard/internal/middleware"
	"NoteBoard/internal/realtime"
	"NoteBoard/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	authService *service.AuthService,
	profileService *service.ProfileService,
	noteService *service.NoteService,
	avatarService *service.AvatarService,
	hub *realtime.Hub,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	authHandler := NewAuthHandler(authService, logger, config)
	profileHandler := NewProfileHandler(profileService, logger)
	noteHandler := NewNoteHandler(noteService, logger)
	avatarHandler := NewAvatarHandler(avatarService, logger, config)

	// Session provider
	r.Post("/api/auth/magiclink", authHandler.RequestMagicLink)
	r.Post("/api/auth/verify", authHandler.Verify)
	r.Get("/api/auth/verify", authHandler.Verify) // переход по ссылке из письма
	r.Post("/api/auth/oauth", authHandler.OAuth)
	r.Post("/api/auth/logout", authHandler.Logout)
	r.Get("/api/auth/session", authHandler.Session)

	// Profile store
	r.Get("/api/profile", profileHandler.Get)
	r.Put("/api/profile", profileHandler.Upsert)

	// Note store
	r.Get("/api/notes", noteHandler.List)
	r.Post("/api/notes", noteHandler.Create)
	r.Put("/api/notes/{id}", noteHandler.Update)
	r.Delete("/api/notes/{id}", noteHandler.Delete)

	// Avatar blob store
	r.Get("/api/avatars", avatarHandler.ListNames)
	r.Post("/api/avatars", avatarHandler.Upload)
	r.Get("/api/avatars/{name}", avatarHandler.Download)

	// Change notifications
	r.Get("/api/events", hub.ServeWS)

	return &Handler{Router: r}
}
