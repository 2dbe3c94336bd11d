package seeders

import (
	"errors"

	"nishan.dev/configs/configslog"
	"nishan.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedDefaultAbout creates a placeholder active profile when the abouts
// table is empty, so a fresh install renders pages instead of blanks.
func SeedDefaultAbout(db *gorm.DB) error {
	var existing models.About
	err := db.Where("is_active = ?", true).First(&existing).Error
	if err == nil {
		configslog.SLog.Info("Active about record already present, skipping seed")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Failed to check abouts table", zap.Error(err))
		return err
	}

	about := models.About{
		FullName: "Site Owner",
		Title:    "Software Developer",
		Bio:      "<p>Welcome to my portfolio.</p>",
		Email:    "owner@example.com",
		IsActive: true,
	}
	if err := db.Create(&about).Error; err != nil {
		configslog.Log.Error("Failed to seed default about record", zap.Error(err))
		return err
	}
	configslog.SLog.Infow("Default about record created", "id", about.ID)
	return nil
}
