package models

import "time"

// BaseModel tüm tablolarda ortak olan alanları taşır.
// Rezervasyon iptali geri alınamaz olduğu için soft delete kullanılmaz.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
