package service

import (
	"NoteBoard/internal/model"
	"NoteBoard/internal/repo"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrAvatarTooLarge — превышен лимит размера.
	ErrAvatarTooLarge = errors.New("avatar exceeds size limit")
	// ErrAvatarBadType — не изображение.
	ErrAvatarBadType = errors.New("avatar must be an image")
	// ErrAvatarNotFound — блоба с таким именем нет.
	ErrAvatarNotFound = errors.New("avatar not found")
)

// AvatarService инкапсулирует работу с хранилищем аватаров.
type AvatarService struct {
	avatars repo.AvatarRepository
	maxSize int64
}

// NewAvatarService создаёт сервис аватаров; maxSize — лимит в байтах.
func NewAvatarService(avatars repo.AvatarRepository, maxSize int64) *AvatarService {
	return &AvatarService{avatars: avatars, maxSize: maxSize}
}

// Upload сохраняет новый блоб и возвращает сгенерированное имя.
// Каждая загрузка даёт новое имя: дедупликации нет намеренно, «текущий»
// аватар определяется только полем avatar_ref профиля.
func (s *AvatarService) Upload(ctx context.Context, userID, fileName, contentType string, content []byte) (string, error) {
	if int64(len(content)) > s.maxSize || len(content) == 0 {
		return "", ErrAvatarTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrAvatarBadType
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	name := uuid.NewString() + ext

	a := &model.Avatar{
		Name:        name,
		ContentType: contentType,
		Content:     content,
		UploadedBy:  userID,
	}
	if err := s.avatars.Save(ctx, a); err != nil {
		return "", fmt.Errorf("save avatar: %w", err)
	}
	return name, nil
}

// Download возвращает блоб по имени.
func (s *AvatarService) Download(ctx context.Context, name string) (*model.Avatar, error) {
	a, err := s.avatars.Get(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvatarNotFound
		}
		return nil, fmt.Errorf("load avatar: %w", err)
	}
	return a, nil
}

// ListNames возвращает имена всех блобов.
func (s *AvatarService) ListNames(ctx context.Context) ([]string, error) {
	names, err := s.avatars.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list avatars: %w", err)
	}
	return names, nil
}
