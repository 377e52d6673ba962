package repo

import (
	"NoteBoard/internal/model"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestLoginTokenRepository_SingleUse(t *testing.T) {
	db := newTestDB(t)
	r := NewLoginTokenRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	tok := &model.LoginToken{
		ID:        uuid.NewString(),
		Email:     "alice@example.com",
		TokenHash: []byte("hash"),
		ExpiresAt: now.Add(15 * time.Minute),
	}
	assert.NoError(t, r.Create(ctx, tok))

	got, err := r.GetActive(ctx, tok.ID, now)
	assert.NoError(t, err)
	assert.Equal(t, tok.Email, got.Email)

	assert.NoError(t, r.MarkUsed(ctx, tok.ID, now))

	// использованный токен больше не активен и не отмечается повторно
	_, err = r.GetActive(ctx, tok.ID, now)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, r.MarkUsed(ctx, tok.ID, now), gorm.ErrRecordNotFound)
}

func TestLoginTokenRepository_Expired(t *testing.T) {
	db := newTestDB(t)
	r := NewLoginTokenRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	tok := &model.LoginToken{
		ID:        uuid.NewString(),
		Email:     "bob@example.com",
		TokenHash: []byte("hash"),
		ExpiresAt: now.Add(-time.Minute),
	}
	assert.NoError(t, r.Create(ctx, tok))

	_, err := r.GetActive(ctx, tok.ID, now)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
