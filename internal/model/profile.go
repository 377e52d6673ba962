package model

import "time"

// Profile — публичные настройки пользователя. Ровно одна строка на
// пользователя: создание и обновление объединены в upsert по UserID.
type Profile struct {
	UserID string `gorm:"primaryKey;type:uuid"`

	Username  string `gorm:"not null"`
	Website   string
	AvatarRef string // имя блоба в хранилище аватаров; пустое = нет аватара

	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
