package models

import "time"

// SpecialEvent yönetici tarafından açılan, brunch dışındaki özel geceleri
// temsil eder (konser, degüstasyon vb.).
type SpecialEvent struct {
	BaseModel
	DisplayName string    `gorm:"type:varchar(150);not null;index"`
	BookingDate time.Time `gorm:"type:date;not null;index"`
	BookingTime *string   `gorm:"type:varchar(5)"` // "HH:MM"; saati belirsiz etkinliklerde NULL
	IsClosed    bool      `gorm:"not null;default:false"` // true ise yeni rezervasyon alınmaz

	// Etkinlik silinince rezervasyonları da gider.
	Bookings []Booking `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
