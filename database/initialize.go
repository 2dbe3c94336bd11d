package database

import (
	"nishan.dev/configs/configslog"
	"nishan.dev/database/migrations"
	"nishan.dev/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and seeders inside one transaction so a
// half-applied schema never survives a failure.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed flag given, nothing to do.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Failed to begin database transaction", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Database initialization failed (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Rolling back after initialization error.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Additional error during rollback", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Database initialization starting...")

	if migrate {
		configslog.SLog.Info("Running migrations...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migration failed", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrations completed.")
	} else {
		configslog.SLog.Info("Migrate flag not given, skipping migration step.")
	}

	if seed {
		configslog.SLog.Info("Running seeders...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding failed", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeders completed.")
	} else {
		configslog.SLog.Info("Seed flag not given, skipping seeder step.")
	}

	configslog.SLog.Info("Committing transaction...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit failed", zap.Error(err))
		return
	}

	configslog.SLog.Info("Database initialization finished successfully")
}

func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Running migrations in order...")

	if err := migrations.MigrateAboutTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateServicesTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateProjectsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateBlogsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateGalleryTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateTestimonialsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateCertificatesTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateSkillsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateFAQsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateContactMessagesTable(db); err != nil {
		return err
	}

	configslog.SLog.Info("All migrations ran successfully.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info("Checking/creating default about record...")
	if err := seeders.SeedDefaultAbout(db); err != nil {
		return err
	}

	configslog.SLog.Info("All seeders checked/ran successfully.")
	return nil
}
