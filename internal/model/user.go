package model

import "time"

// User — учётная запись. Идентификатор — непрозрачная строка (UUID),
// выдаётся при первом входе и далее не меняется.
type User struct {
	ID    string `gorm:"primaryKey;type:uuid"`
	Email string `gorm:"uniqueIndex;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
