package main

import (
	"NoteBoard/internal/config"
	"NoteBoard/internal/handlers"
	"NoteBoard/internal/mailer"
	"NoteBoard/internal/middleware"
	"NoteBoard/internal/realtime"
	"NoteBoard/internal/repo"
	"NoteBoard/internal/service"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	tokenRepo := repo.NewLoginTokenRepository(gormDB)
	profileRepo := repo.NewProfileRepository(gormDB)
	noteRepo := repo.NewNoteRepository(gormDB)
	avatarRepo := repo.NewAvatarRepository(gormDB)

	hub := realtime.NewHub(sugar)
	mail := mailer.NewLogMailer(sugar)

	authService := service.NewAuthService(
		userRepo, tokenRepo, mail,
		time.Duration(cfg.MagicLinkTTLMin)*time.Minute,
		cfg.ServerURL,
	)
	profileService := service.NewProfileService(profileRepo)
	noteService := service.NewNoteService(noteRepo, hub)
	avatarService := service.NewAvatarService(avatarRepo, int64(cfg.AvatarMaxSizeMB)*1024*1024)

	h := handlers.NewHandler(authService, profileService, noteService, avatarService, hub, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"MagicLinkTTLMin", cfg.MagicLinkTTLMin,
		"AvatarMaxSizeMB", cfg.AvatarMaxSizeMB,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
