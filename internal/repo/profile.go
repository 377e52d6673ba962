package repo

import (
	"NoteBoard/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository — минимальный контракт доступа к Profile.
type ProfileRepository interface {
	// Get возвращает профиль пользователя или gorm.ErrRecordNotFound.
	Get(ctx context.Context, userID string) (*model.Profile, error)

	// Upsert создаёт или обновляет профиль одной операцией по UserID.
	Upsert(ctx context.Context, p *model.Profile) error
}

type profileRepo struct {
	db *gorm.DB
}

// NewProfileRepository создаёт реализацию репозитория для Profile.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Get(ctx context.Context, userID string) (*model.Profile, error) {
	var p model.Profile
	if err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert: конфликт по user_id превращает вставку в обновление; строка на
// пользователя всегда ровно одна.
func (r *profileRepo) Upsert(ctx context.Context, p *model.Profile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "website", "avatar_ref", "updated_at"}),
	}).Create(p).Error
}
