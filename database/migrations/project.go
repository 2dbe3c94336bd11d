package migrations

import (
	"nishan.dev/configs/configslog"
	"nishan.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateProjectsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating projects table...")
	err := db.AutoMigrate(&models.Project{})
	if err != nil {
		configslog.Log.Error("Failed to migrate projects table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Projects table migrated successfully")
	return nil
}
