// Package feed держит клиентское состояние ленты заметок: упорядоченный
// список, открытый редактор и локальные последствия create/update/delete
// без полной перезагрузки.
package feed

import "time"

// Entry — одна заметка в ленте, как её отдал сервер: вместе с владельцем и
// уже вычисленными правами действующего пользователя.
type Entry struct {
	ID             int64
	Title          string
	Note           string
	HasBody        bool // false: тело скрыто или отсутствует
	NoteType       int
	OwnerID        string
	OwnerUsername  string
	OwnerAvatarRef string
	UpdatedAt      time.Time
	CanEdit        bool
	CanDelete      bool
}

// Feed — упорядоченная лента плюс состояние открытого редактора.
// Нулевое значение готово к использованию.
type Feed struct {
	entries []Entry
	openID  int64 // 0 — редактор закрыт
}

// Replace полностью заменяет ленту свежей выдачей сервера. Порядок
// сохраняется как есть: сервер отдаёт по убыванию updated_at.
func (f *Feed) Replace(entries []Entry) {
	f.entries = append(f.entries[:0:0], entries...)
}

// Entries возвращает копию текущей ленты.
func (f *Feed) Entries() []Entry {
	return append([]Entry(nil), f.entries...)
}

// Len возвращает размер ленты.
func (f *Feed) Len() int { return len(f.entries) }

// Get возвращает запись по ID.
func (f *Feed) Get(id int64) (Entry, bool) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Upsert применяет созданную или изменённую заметку: старая запись с тем же
// ID убирается, свежая встаёт в начало. Лента остаётся отсортированной по
// давности изменения без обращения к серверу.
func (f *Feed) Upsert(e Entry) {
	f.removeByID(e.ID)
	f.entries = append([]Entry{e}, f.entries...)
}

// Remove применяет удаление заметки. Если удалённая заметка была открыта в
// редакторе, редактор сбрасывается; возвращает true, когда это произошло.
func (f *Feed) Remove(id int64) (editorReset bool) {
	f.removeByID(id)
	if f.openID == id && id != 0 {
		f.openID = 0
		return true
	}
	return false
}

// Open открывает заметку в редакторе. Возвращает false, если записи нет в
// ленте.
func (f *Feed) Open(id int64) bool {
	if _, ok := f.Get(id); !ok {
		return false
	}
	f.openID = id
	return true
}

// OpenID возвращает ID открытой заметки и признак того, что редактор открыт.
func (f *Feed) OpenID() (int64, bool) {
	return f.openID, f.openID != 0
}

// CloseEditor закрывает редактор.
func (f *Feed) CloseEditor() { f.openID = 0 }

func (f *Feed) removeByID(id int64) {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	f.entries = kept
}
