package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kapasite kuralları. Her "kova" (brunch servisi veya akşam) için tek tavan.
const (
	MaxGuestsPerBucket = 25
	BrunchSlotFirst    = "12:00"
	BrunchSlotSecond   = "13:30"
)

// BrunchSlots pazar brunch'ının iki sabit servis saati.
var BrunchSlots = []string{BrunchSlotFirst, BrunchSlotSecond}

// IsBrunchSlot verilen saatin brunch servislerinden biri olup olmadığını söyler.
func IsBrunchSlot(t *string) bool {
	if t == nil {
		return false
	}
	for _, slot := range BrunchSlots {
		if *t == slot {
			return true
		}
	}
	return false
}

// Booking bir misafir rezervasyonudur. EventID NULL ise rezervasyon
// tarih+saat ile tanımlanan bir brunch servisine aittir.
type Booking struct {
	BaseModel
	EventID *uint `gorm:"index"` // special_events.id FK (nullable)

	Name  string `gorm:"type:varchar(150);not null"`
	Email string `gorm:"type:varchar(150);not null;index"` // mükerrer kontrolünün anahtarı (kova başına)
	Phone string `gorm:"type:varchar(30);not null"`

	BookingDate time.Time `gorm:"type:date;not null;index"`
	BookingTime *string   `gorm:"type:varchar(5);index"` // "HH:MM"; NULL olabilir
	Guests      int       `gorm:"not null"`

	// İptal linkinde taşınan, tahmin edilemez tek kullanımlık yetki.
	CancellationToken string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Notes             string `gorm:"type:text"`
}

// BeforeCreate iptal tokenını üretir. Token dışarıdan asla verilmez.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.CancellationToken == "" {
		b.CancellationToken = uuid.NewString()
	}
	return nil
}
