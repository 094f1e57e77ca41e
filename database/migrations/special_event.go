package migrations

import (
	"rezerve.link/configs/configslog"
	"rezerve.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSpecialEventsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating special_events table...")
	err := db.AutoMigrate(&models.SpecialEvent{})
	if err != nil {
		configslog.Log.Error("Failed to migrate special_events table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Special_events table migrated successfully")
	return nil
}
