package model

import "time"

// User — минимальный профиль пользователя. Учётные данные живут в внешнем
// auth-сервисе; здесь храним только то, что нужно для откликов и уведомлений.
type User struct {
	ID string `gorm:"primaryKey;type:uuid"`

	Name  string `gorm:"not null"`
	Email string `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
