package service

import (
	"NoteBoard/internal/access"
	"NoteBoard/internal/model"
	"NoteBoard/internal/realtime"
	"NoteBoard/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrTitleRequired — заголовок обязателен.
	ErrTitleRequired = errors.New("title is required")
	// ErrBadNoteType — значение вне перечисления.
	ErrBadNoteType = errors.New("unknown note type")
	// ErrNoteNotFound — заметки нет.
	ErrNoteNotFound = errors.New("note not found")
	// ErrForbidden — действие не разрешено текущему пользователю.
	ErrForbidden = errors.New("operation not permitted")
)

// NoteService инкапсулирует бизнес-логику работы с заметками. Правила
// доступа здесь те же, что отдаются клиенту пакетом access.
type NoteService struct {
	notes repo.NoteRepository
	hub   *realtime.Hub
}

// NewNoteService создаёт сервис заметок. hub может быть nil (без рассылки).
func NewNoteService(notes repo.NoteRepository, hub *realtime.Hub) *NoteService {
	return &NoteService{notes: notes, hub: hub}
}

// ListedNote — заметка в выдаче списка, вместе с вычисленными для
// действующего пользователя разрешениями.
type ListedNote struct {
	repo.NoteRow
	CanEdit   bool
	CanDelete bool
}

// List возвращает все заметки по убыванию updated_at. Тело чужой заметки с
// NoteUnpermitted вырезается: она остаётся видимой, но закрытой.
func (s *NoteService) List(ctx context.Context, actingUserID string) ([]ListedNote, error) {
	rows, err := s.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	out := make([]ListedNote, 0, len(rows))
	for _, row := range rows {
		if row.NoteType == model.NoteUnpermitted && row.UserID != actingUserID {
			row.Note = ""
		}
		out = append(out, ListedNote{
			NoteRow:   row,
			CanEdit:   access.CanEdit(row.UserID, row.NoteType, actingUserID),
			CanDelete: access.CanDelete(row.UserID, actingUserID),
		})
	}
	return out, nil
}

// NoteInput — поля создания/обновления заметки.
type NoteInput struct {
	Title    string
	Note     string
	NoteType model.NoteType
}

func (in *NoteInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if !in.NoteType.Valid() {
		return ErrBadNoteType
	}
	return nil
}

// Create вставляет заметку от имени пользователя и возвращает её с
// присвоенным ID.
func (s *NoteService) Create(ctx context.Context, actingUserID string, in NoteInput) (*model.Note, error) {
	if actingUserID == "" {
		return nil, ErrForbidden
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	n := &model.Note{
		UserID:   actingUserID,
		Title:    strings.TrimSpace(in.Title),
		Note:     in.Note,
		NoteType: in.NoteType,
	}
	if err := s.notes.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.notify(realtime.EventNoteCreated, n.ID)
	return n, nil
}

// Update правит заметку: владелец — всё, остальные — только при
// NoteWritable и без права менять сам флаг.
func (s *NoteService) Update(ctx context.Context, actingUserID string, id int64, in NoteInput) (*model.Note, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	existing, err := s.notes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("load note: %w", err)
	}

	if !access.CanEdit(existing.UserID, existing.NoteType, actingUserID) {
		return nil, ErrForbidden
	}

	fields := map[string]any{
		"title": strings.TrimSpace(in.Title),
		"note":  in.Note,
	}
	if existing.UserID == actingUserID {
		fields["note_type"] = in.NoteType
	} else if in.NoteType != existing.NoteType {
		// чужой флаг менять нельзя
		return nil, ErrForbidden
	}

	if err := s.notes.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.notify(realtime.EventNoteUpdated, id)
	return s.notes.Get(ctx, id)
}

// Delete удаляет заметку. Только владелец, флаг NoteType не участвует.
func (s *NoteService) Delete(ctx context.Context, actingUserID string, id int64) error {
	existing, err := s.notes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("load note: %w", err)
	}

	if !access.CanDelete(existing.UserID, actingUserID) {
		return ErrForbidden
	}

	if err := s.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.notify(realtime.EventNoteDeleted, id)
	return nil
}

func (s *NoteService) notify(eventType string, id int64) {
	if s.hub != nil {
		s.hub.Broadcast(realtime.Event{Type: eventType, NoteID: id})
	}
}
