package configsdatabase

import (
	"fmt"
	"time"

	"nishan.dev/configs"
	"nishan.dev/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB opens the PostgreSQL connection and configures the pool.
// Connection settings come from the environment (see .env.example).
func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		configs.GetString("DB_HOST", "localhost"),
		configs.GetString("DB_USER", "portfolio"),
		configs.GetString("DB_PASSWORD", ""),
		configs.GetString("DB_NAME", "portfolio"),
		configs.GetString("DB_PORT", "5432"),
		configs.GetString("DB_SSLMODE", "disable"),
	)

	gormLogLevel := logger.Warn
	if configs.GetString("APP_ENV", "development") != "production" {
		gormLogLevel = logger.Info
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		configslog.Log.Fatal("Database connection failed", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Could not access the underlying sql.DB", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(configs.GetInt("DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetMaxIdleConns(configs.GetInt("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(time.Duration(configs.GetInt("DB_CONN_MAX_LIFETIME_MIN", 30)) * time.Minute)

	db = conn
	configslog.SLog.Info("Database connection established")
}

// GetDB returns the shared connection. InitDB must have run first.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB called before InitDB")
	}
	return db
}

// SetDB swaps the shared connection; used by tests to inject an
// in-memory database.
func SetDB(conn *gorm.DB) {
	db = conn
}

// CloseDB closes the underlying connection pool.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Could not access the underlying sql.DB on close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Database close failed", zap.Error(err))
		return
	}
	configslog.SLog.Info("Database connection closed")
}
