package repo

import (
	"NoteBoard/internal/model"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAvatarRepository_SaveGetList(t *testing.T) {
	db := newTestDB(t)
	r := NewAvatarRepository(db)
	ctx := context.Background()

	uploader := uuid.NewString()

	a := &model.Avatar{
		Name:        uuid.NewString() + ".png",
		ContentType: "image/png",
		Content:     []byte{0x89, 0x50, 0x4e, 0x47},
		UploadedBy:  uploader,
	}
	assert.NoError(t, r.Save(ctx, a))

	got, err := r.Get(ctx, a.Name)
	assert.NoError(t, err)
	assert.Equal(t, a.Content, got.Content)
	assert.Equal(t, "image/png", got.ContentType)

	names, err := r.ListNames(ctx)
	assert.NoError(t, err)
	assert.Contains(t, names, a.Name)

	// имена уникальны: повторное сохранение под тем же именем — ошибка
	assert.Error(t, r.Save(ctx, &model.Avatar{Name: a.Name, ContentType: "image/png", Content: []byte{1}}))
}

func TestAvatarRepository_GetMissing(t *testing.T) {
	db := newTestDB(t)
	r := NewAvatarRepository(db)

	got, err := r.Get(context.Background(), "nope.png")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
