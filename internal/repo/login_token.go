package repo

import (
	"NoteBoard/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// LoginTokenRepository — хранилище одноразовых magic-link токенов.
type LoginTokenRepository interface {
	// Create сохраняет новый токен.
	Create(ctx context.Context, token *model.LoginToken) error

	// GetActive возвращает неиспользованный и непросроченный токен по ID.
	GetActive(ctx context.Context, id string, now time.Time) (*model.LoginToken, error)

	// MarkUsed помечает токен использованным. Повторная отметка — ошибка
	// gorm.ErrRecordNotFound: токен одноразовый.
	MarkUsed(ctx context.Context, id string, now time.Time) error
}

type loginTokenRepo struct {
	db *gorm.DB
}

// NewLoginTokenRepository создаёт реализацию репозитория токенов входа.
func NewLoginTokenRepository(db *gorm.DB) LoginTokenRepository {
	return &loginTokenRepo{db: db}
}

func (r *loginTokenRepo) Create(ctx context.Context, token *model.LoginToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *loginTokenRepo) GetActive(ctx context.Context, id string, now time.Time) (*model.LoginToken, error) {
	var t model.LoginToken
	err := r.db.WithContext(ctx).
		Where("id = ? AND used_at IS NULL AND expires_at > ?", id, now).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *loginTokenRepo) MarkUsed(ctx context.Context, id string, now time.Time) error {
	tx := r.db.WithContext(ctx).Model(&model.LoginToken{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", now)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
