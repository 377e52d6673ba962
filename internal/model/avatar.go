package model

import "time"

// Avatar — бинарный объект в хранилище аватаров. Имя генерируется при
// каждой загрузке заново, дедупликации нет.
type Avatar struct {
	Name string `gorm:"primaryKey"`

	ContentType string `gorm:"not null"`
	Content     []byte `gorm:"not null"`

	UploadedBy string    `gorm:"index;type:uuid"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}
