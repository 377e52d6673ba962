package model

import "time"

// LoginToken — одноразовый токен magic-link входа. В базе хранится только
// bcrypt-хеш, сам токен уходит пользователю в письме.
type LoginToken struct {
	ID    string `gorm:"primaryKey;type:uuid"`
	Email string `gorm:"not null;index"`

	TokenHash []byte    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
	UsedAt    *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
