package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger, SLog its sugared counterpart.
// InitLogger must run before anything touches either.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

func InitLogger() {
	env := os.Getenv("APP_ENV")

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("logger could not be initialized: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered log entries; call it on shutdown.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
