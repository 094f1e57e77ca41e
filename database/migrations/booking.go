package migrations

import (
	"rezerve.link/configs/configslog"
	"rezerve.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateBookingsTable Booking modeli için tabloyu oluşturur/günceller.
// special_events tablosu FK için önce var olmalı.
func MigrateBookingsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating bookings table...")
	err := db.AutoMigrate(&models.Booking{})
	if err != nil {
		configslog.Log.Error("Failed to migrate bookings table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Bookings table migrated successfully")
	return nil
}
