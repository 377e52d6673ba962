package repo

import (
	"NoteBoard/internal/model"
	"context"

	"gorm.io/gorm"
)

// AvatarRepository — минимальный контракт хранилища аватаров.
type AvatarRepository interface {
	// Save сохраняет новый блоб. Имя уже сгенерировано вызывающим,
	// конфликт имён — ошибка.
	Save(ctx context.Context, a *model.Avatar) error

	// Get возвращает блоб по имени или gorm.ErrRecordNotFound.
	Get(ctx context.Context, name string) (*model.Avatar, error)

	// ListNames возвращает имена всех блобов.
	ListNames(ctx context.Context) ([]string, error)
}

type avatarRepo struct {
	db *gorm.DB
}

// NewAvatarRepository создаёт реализацию репозитория для Avatar.
func NewAvatarRepository(db *gorm.DB) AvatarRepository {
	return &avatarRepo{db: db}
}

func (r *avatarRepo) Save(ctx context.Context, a *model.Avatar) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *avatarRepo) Get(ctx context.Context, name string) (*model.Avatar, error) {
	var a model.Avatar
	if err := r.db.WithContext(ctx).First(&a, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *avatarRepo) ListNames(ctx context.Context) ([]string, error) {
	names := []string{}
	err := r.db.WithContext(ctx).Model(&model.Avatar{}).
		Order("created_at DESC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
