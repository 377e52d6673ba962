package service

import (
	"NoteBoard/internal/model"
	"NoteBoard/internal/repo"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// мок для repo.LoginTokenRepository
type mockTokenRepo struct{ mock.Mock }

func (m *mockTokenRepo) Create(ctx context.Context, token *model.LoginToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockTokenRepo) GetActive(ctx context.Context, id string, now time.Time) (*model.LoginToken, error) {
	args := m.Called(ctx, id, now)
	if t, ok := args.Get(0).(*model.LoginToken); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTokenRepo) MarkUsed(ctx context.Context, id string, now time.Time) error {
	args := m.Called(ctx, id, now)
	return args.Error(0)
}

var _ repo.LoginTokenRepository = (*mockTokenRepo)(nil)

// мок для repo.ProfileRepository
type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) Get(ctx context.Context, userID string) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if p, ok := args.Get(0).(*model.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepo) Upsert(ctx context.Context, p *model.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

var _ repo.ProfileRepository = (*mockProfileRepo)(nil)

// мок для repo.NoteRepository
type mockNoteRepo struct{ mock.Mock }

func (m *mockNoteRepo) List(ctx context.Context) ([]repo.NoteRow, error) {
	args := m.Called(ctx)
	if rows, ok := args.Get(0).([]repo.NoteRow); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteRepo) Get(ctx context.Context, id int64) (*model.Note, error) {
	args := m.Called(ctx, id)
	if n, ok := args.Get(0).(*model.Note); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteRepo) Create(ctx context.Context, note *model.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *mockNoteRepo) Update(ctx context.Context, id int64, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *mockNoteRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repo.NoteRepository = (*mockNoteRepo)(nil)

// мок для repo.AvatarRepository
type mockAvatarRepo struct{ mock.Mock }

func (m *mockAvatarRepo) Save(ctx context.Context, a *model.Avatar) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAvatarRepo) Get(ctx context.Context, name string) (*model.Avatar, error) {
	args := m.Called(ctx, name)
	if a, ok := args.Get(0).(*model.Avatar); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAvatarRepo) ListNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.AvatarRepository = (*mockAvatarRepo)(nil)

// capturingMailer запоминает последнюю отправленную ссылку
type capturingMailer struct {
	email string
	link  string
}

func (m *capturingMailer) SendLoginLink(email, link string) error {
	m.email = email
	m.link = link
	return nil
}
