package database

import (
	"rezerve.link/configs/configslog"
	"rezerve.link/database/migrations"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize şema migrasyonlarını çalıştırır. Uygulama açılışında ve
// migrasyon CLI'ından çağrılır.
func Initialize(db *gorm.DB) error {
	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if err := RunMigrationsInOrder(db); err != nil {
		configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
	return nil
}

// RunMigrationsInOrder tabloları FK bağımlılık sırasına göre migrate eder.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info(" -> SpecialEvent migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateSpecialEventsTable(db); err != nil {
		return err
	}
	configslog.SLog.Info(" -> SpecialEvent migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Booking migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateBookingsTable(db); err != nil {
		return err
	}
	configslog.SLog.Info(" -> Booking migrasyonları tamamlandı.")

	return nil
}
