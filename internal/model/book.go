package model

import "time"

// Book — книга, выставленная владельцем для выдачи.
// Available/Archived меняются только через BookRepository (compare-and-set),
// прямой записи в эти поля из сервисов нет.
type Book struct {
	ID      string `gorm:"primaryKey;type:uuid"`
	OwnerID string `gorm:"not null;index;type:uuid"`

	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	Title       string `gorm:"not null"`
	Author      string
	Description string
	Category    string
	CoverURL    string

	Available bool `gorm:"not null;default:true"`
	Archived  bool `gorm:"not null;default:false"` // one-way, un-archive не поддерживается

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
