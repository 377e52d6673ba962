package service

import (
	"NoteBoard/internal/model"
	"NoteBoard/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrUsernameTooShort — имя обязательно и не короче трёх символов.
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")
	// ErrProfileNotFound — профиль ещё не сохранялся.
	ErrProfileNotFound = errors.New("profile not found")
)

// ProfileService инкапсулирует бизнес-логику работы с профилем.
type ProfileService struct {
	profiles repo.ProfileRepository
}

// NewProfileService создаёт сервис профилей.
func NewProfileService(profiles repo.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get возвращает профиль пользователя.
func (s *ProfileService) Get(ctx context.Context, userID string) (*model.Profile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

// ProfileUpdate — поля, принимаемые на сохранение. Website и AvatarRef
// опциональны: nil означает «не трогать», пустая строка — «очистить».
type ProfileUpdate struct {
	Username  string
	Website   *string
	AvatarRef *string
}

// Upsert валидирует и сохраняет профиль одной операцией: создание и
// обновление не различаются.
func (s *ProfileService) Upsert(ctx context.Context, userID string, upd ProfileUpdate) (*model.Profile, error) {
	username := strings.TrimSpace(upd.Username)
	if len([]rune(username)) < 3 {
		return nil, ErrUsernameTooShort
	}

	// подхватываем текущие значения для незатронутых опциональных полей
	current, err := s.profiles.Get(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	p := &model.Profile{UserID: userID, Username: username}
	if current != nil {
		p.Website = current.Website
		p.AvatarRef = current.AvatarRef
	}
	if upd.Website != nil {
		p.Website = strings.TrimSpace(*upd.Website)
	}
	if upd.AvatarRef != nil {
		p.AvatarRef = strings.TrimSpace(*upd.AvatarRef)
	}

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}
