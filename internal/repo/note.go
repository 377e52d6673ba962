package repo

import (
	"NoteBoard/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// NoteRow — строка списка заметок вместе с данными владельца из профиля.
type NoteRow struct {
	ID        int64
	UserID    string
	Title     string
	Note      string
	NoteType  model.NoteType
	UpdatedAt time.Time

	OwnerUsername  string
	OwnerAvatarRef string
}

// NoteRepository — контракт доступа к Note для слоя сервиса.
type NoteRepository interface {
	// List возвращает все заметки с данными владельца,
	// отсортированные по updated_at по убыванию.
	List(ctx context.Context) ([]NoteRow, error)

	// Get возвращает заметку по ID или gorm.ErrRecordNotFound.
	Get(ctx context.Context, id int64) (*model.Note, error)

	// Create вставляет заметку и запись о владении одной транзакцией,
	// заполняет note.ID присвоенным значением.
	Create(ctx context.Context, note *model.Note) error

	// Update обновляет перечисленные поля заметки.
	Update(ctx context.Context, id int64, fields map[string]any) error

	// Delete удаляет заметку и запись о владении одной транзакцией.
	Delete(ctx context.Context, id int64) error
}

type noteRepo struct {
	db *gorm.DB
}

// NewNoteRepository создаёт реализацию репозитория для Note.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) List(ctx context.Context) ([]NoteRow, error) {
	rows := []NoteRow{}
	err := r.db.WithContext(ctx).
		Table("notes").
		Select("notes.id, notes.user_id, notes.title, notes.note, notes.note_type, notes.updated_at, " +
			"COALESCE(profiles.username, '') AS owner_username, " +
			"COALESCE(profiles.avatar_ref, '') AS owner_avatar_ref").
		Joins("LEFT JOIN profiles ON profiles.user_id = notes.user_id").
		Order("notes.updated_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *noteRepo) Get(ctx context.Context, id int64) (*model.Note, error) {
	var n model.Note
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// Create: заметка и её authors-запись появляются атомарно — частично
// созданных заметок не бывает.
func (r *noteRepo) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(note).Error; err != nil {
			return err
		}
		return tx.Create(&model.Author{NoteID: note.ID, UserID: note.UserID}).Error
	})
}

func (r *noteRepo) Update(ctx context.Context, id int64, fields map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&model.Note{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete: authors-запись и сама заметка исчезают в одной транзакции,
// осиротевших записей о владении не остаётся.
func (r *noteRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Author{}, "note_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Note{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
