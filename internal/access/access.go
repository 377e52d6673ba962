// Package access решает, какие действия над заметкой доступны действующему
// пользователю. Это клиентское зеркало серверных правил доступа: сервер
// проверяет то же самое перед каждой мутацией.
package access

import "NoteBoard/internal/model"

// Decision — пара независимых разрешений для одной заметки.
type Decision struct {
	CanEdit   bool
	CanDelete bool
}

// CanDelete: только владелец, и только если пользователь вообще известен.
// Флаг NoteType на удаление не влияет никогда.
func CanDelete(ownerID, actingUserID string) bool {
	if actingUserID == "" || ownerID == "" {
		return false
	}
	return actingUserID == ownerID
}

// CanEdit: владелец всегда, прочие — только при NoteWritable.
// Неизвестный пользователь или заметка без владельца — отказ.
func CanEdit(ownerID string, noteType model.NoteType, actingUserID string) bool {
	if actingUserID == "" || ownerID == "" {
		return false
	}
	return actingUserID == ownerID || noteType == model.NoteWritable
}

// Evaluate возвращает оба разрешения сразу.
func Evaluate(note *model.Note, actingUserID string) Decision {
	if note == nil {
		return Decision{}
	}
	return Decision{
		CanEdit:   CanEdit(note.UserID, note.NoteType, actingUserID),
		CanDelete: CanDelete(note.UserID, actingUserID),
	}
}
