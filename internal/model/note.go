package model

import "time"

// NoteType — что разрешено другим пользователям. Удаление этим флагом
// не управляется никогда: удалять может только владелец.
type NoteType int

const (
	// NoteUnpermitted — другие видят заметку в списке, но не её текст.
	NoteUnpermitted NoteType = 1
	// NoteReadable — другие могут читать текст, править — только владелец.
	NoteReadable NoteType = 2
	// NoteWritable — другие могут читать и править текст.
	NoteWritable NoteType = 3
)

// Valid сообщает, входит ли значение в диапазон перечисления.
func (t NoteType) Valid() bool {
	return t >= NoteUnpermitted && t <= NoteWritable
}

// Note — опубликованная заметка. Владелец (UserID) неизменен после создания.
type Note struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	UserID string `gorm:"not null;index;type:uuid"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Title    string   `gorm:"not null"`
	Note     string   // тело, может быть пустым
	NoteType NoteType `gorm:"not null;default:1"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index"`
}

// Author — запись о владении заметкой. Живёт и умирает строго вместе
// с самой заметкой, в одной транзакции.
type Author struct {
	NoteID int64  `gorm:"primaryKey"`
	UserID string `gorm:"not null;index;type:uuid"`

	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
