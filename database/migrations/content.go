package migrations

import (
	"nishan.dev/configs/configslog"
	"nishan.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateServicesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating services table...")
	err := db.AutoMigrate(&models.Service{})
	if err != nil {
		configslog.Log.Error("Failed to migrate services table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Services table migrated successfully")
	return nil
}

func MigrateGalleryTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating galleries table...")
	err := db.AutoMigrate(&models.Gallery{})
	if err != nil {
		configslog.Log.Error("Failed to migrate galleries table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Galleries table migrated successfully")
	return nil
}

func MigrateTestimonialsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating testimonials table...")
	err := db.AutoMigrate(&models.Testimonial{})
	if err != nil {
		configslog.Log.Error("Failed to migrate testimonials table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Testimonials table migrated successfully")
	return nil
}

func MigrateCertificatesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating certificates table...")
	err := db.AutoMigrate(&models.Certificate{})
	if err != nil {
		configslog.Log.Error("Failed to migrate certificates table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Certificates table migrated successfully")
	return nil
}

func MigrateSkillsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating skills table...")
	err := db.AutoMigrate(&models.Skill{})
	if err != nil {
		configslog.Log.Error("Failed to migrate skills table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Skills table migrated successfully")
	return nil
}

func MigrateFAQsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating faqs table...")
	err := db.AutoMigrate(&models.FAQ{})
	if err != nil {
		configslog.Log.Error("Failed to migrate faqs table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("FAQs table migrated successfully")
	return nil
}
