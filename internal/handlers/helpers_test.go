package handlers_test

import (
	"NoteBoard/internal/config"
	"NoteBoard/internal/handlers"
	"NoteBoard/internal/mailer"
	"NoteBoard/internal/middleware"
	"NoteBoard/internal/model"
	"NoteBoard/internal/realtime"
	"NoteBoard/internal/repo"
	"NoteBoard/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Local light mocks
type hMockUserRepo struct{ mock.Mock }

func (m *hMockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*hMockUserRepo)(nil)

type hMockTokenRepo struct{ mock.Mock }

func (m *hMockTokenRepo) Create(ctx context.Context, token *model.LoginToken) error {
	return m.Called(ctx, token).Error(0)
}
func (m *hMockTokenRepo) GetActive(ctx context.Context, id string, now time.Time) (*model.LoginToken, error) {
	args := m.Called(ctx, id, now)
	if t, ok := args.Get(0).(*model.LoginToken); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockTokenRepo) MarkUsed(ctx context.Context, id string, now time.Time) error {
	return m.Called(ctx, id, now).Error(0)
}

var _ repo.LoginTokenRepository = (*hMockTokenRepo)(nil)

type hMockProfileRepo struct{ mock.Mock }

func (m *hMockProfileRepo) Get(ctx context.Context, userID string) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if p, ok := args.Get(0).(*model.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockProfileRepo) Upsert(ctx context.Context, p *model.Profile) error {
	return m.Called(ctx, p).Error(0)
}

var _ repo.ProfileRepository = (*hMockProfileRepo)(nil)

type hMockNoteRepo struct{ mock.Mock }

func (m *hMockNoteRepo) List(ctx context.Context) ([]repo.NoteRow, error) {
	args := m.Called(ctx)
	if rows, ok := args.Get(0).([]repo.NoteRow); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockNoteRepo) Get(ctx context.Context, id int64) (*model.Note, error) {
	args := m.Called(ctx, id)
	if n, ok := args.Get(0).(*model.Note); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockNoteRepo) Create(ctx context.Context, note *model.Note) error {
	return m.Called(ctx, note).Error(0)
}
func (m *hMockNoteRepo) Update(ctx context.Context, id int64, fields map[string]any) error {
	return m.Called(ctx, id, fields).Error(0)
}
func (m *hMockNoteRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.NoteRepository = (*hMockNoteRepo)(nil)

type hMockAvatarRepo struct{ mock.Mock }

func (m *hMockAvatarRepo) Save(ctx context.Context, a *model.Avatar) error {
	return m.Called(ctx, a).Error(0)
}
func (m *hMockAvatarRepo) Get(ctx context.Context, name string) (*model.Avatar, error) {
	args := m.Called(ctx, name)
	if a, ok := args.Get(0).(*model.Avatar); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockAvatarRepo) ListNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.AvatarRepository = (*hMockAvatarRepo)(nil)

type routerMocks struct {
	users   *hMockUserRepo
	tokens  *hMockTokenRepo
	profile *hMockProfileRepo
	notes   *hMockNoteRepo
	avatars *hMockAvatarRepo
}

func newHandlersTestRouter(t *testing.T) (http.Handler, *config.Config, *routerMocks) {
	t.Helper()
	cfg := &config.Config{
		AuthSecret:      "test-secret",
		MagicLinkTTLMin: 15,
		AvatarMaxSizeMB: 1,
		BaseURL:         "localhost:8081",
	}
	logger := zap.NewNop().Sugar()
	m := &routerMocks{
		users:   &hMockUserRepo{},
		tokens:  &hMockTokenRepo{},
		profile: &hMockProfileRepo{},
		notes:   &hMockNoteRepo{},
		avatars: &hMockAvatarRepo{},
	}

	hub := realtime.NewHub(logger)
	authSvc := service.NewAuthService(m.users, m.tokens, mailer.NewLogMailer(logger), 15*time.Minute, "http://"+cfg.BaseURL)
	profileSvc := service.NewProfileService(m.profile)
	noteSvc := service.NewNoteService(m.notes, hub)
	avatarSvc := service.NewAvatarService(m.avatars, int64(cfg.AvatarMaxSizeMB)*1024*1024)

	h := handlers.NewHandler(authSvc, profileSvc, noteSvc, avatarSvc, hub, logger, cfg)
	return h.Router, cfg, m
}

func addAuth(t *testing.T, req *http.Request, userID, email, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, email, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
