package migrations

import (
	"nishan.dev/configs/configslog"
	"nishan.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAboutTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating abouts table...")
	err := db.AutoMigrate(&models.About{})
	if err != nil {
		configslog.Log.Error("Failed to migrate abouts table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Abouts table migrated successfully")
	return nil
}
