package service

import (
	"NoteBoard/internal/model"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestAvatarService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("generates fresh name per upload", func(t *testing.T) {
		m := new(mockAvatarRepo)
		svc := NewAvatarService(m, 1024)

		m.On("Save", mock.Anything, mock.MatchedBy(func(a *model.Avatar) bool {
			return strings.HasSuffix(a.Name, ".png") && a.ContentType == "image/png" && a.UploadedBy == "u1"
		})).Return(nil).Twice()

		name1, err := svc.Upload(ctx, "u1", "me.png", "image/png", []byte{1, 2, 3})
		assert.NoError(t, err)
		name2, err := svc.Upload(ctx, "u1", "me.png", "image/png", []byte{1, 2, 3})
		assert.NoError(t, err)

		// одинаковое содержимое — разные имена: дедупликации нет
		assert.NotEqual(t, name1, name2)
		m.AssertExpectations(t)
	})

	t.Run("size limit", func(t *testing.T) {
		m := new(mockAvatarRepo)
		svc := NewAvatarService(m, 2)

		_, err := svc.Upload(ctx, "u1", "big.png", "image/png", []byte{1, 2, 3})
		assert.ErrorIs(t, err, ErrAvatarTooLarge)

		_, err = svc.Upload(ctx, "u1", "empty.png", "image/png", nil)
		assert.ErrorIs(t, err, ErrAvatarTooLarge)
		m.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("non-image rejected", func(t *testing.T) {
		m := new(mockAvatarRepo)
		svc := NewAvatarService(m, 1024)

		_, err := svc.Upload(ctx, "u1", "doc.pdf", "application/pdf", []byte{1})
		assert.ErrorIs(t, err, ErrAvatarBadType)
	})
}

func TestAvatarService_Download(t *testing.T) {
	ctx := context.Background()
	m := new(mockAvatarRepo)
	svc := NewAvatarService(m, 1024)

	m.On("Get", mock.Anything, "x.png").
		Return(&model.Avatar{Name: "x.png", ContentType: "image/png", Content: []byte{9}}, nil).Once()
	a, err := svc.Download(ctx, "x.png")
	assert.NoError(t, err)
	assert.Equal(t, []byte{9}, a.Content)

	m.On("Get", mock.Anything, "missing.png").
		Return((*model.Avatar)(nil), gorm.ErrRecordNotFound).Once()
	_, err = svc.Download(ctx, "missing.png")
	assert.ErrorIs(t, err, ErrAvatarNotFound)
}
