package migrations

import (
	"nishan.dev/configs/configslog"
	"nishan.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateBlogsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating blogs table...")
	err := db.AutoMigrate(&models.Blog{})
	if err != nil {
		configslog.Log.Error("Failed to migrate blogs table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Blogs table migrated successfully")
	return nil
}
