// File: internal/platform/database/gorm.go
package database

import (
	"log"
	"time"

	"volunteer_hub_backend/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Handle wraps the GORM connection together with an explicit "not configured
// or unreachable" state. Repositories branch on DB() instead of testing a nil
// singleton: reads degrade to empty results without a connection, writes
// refuse to proceed. The connection is attempted exactly once, at startup;
// a failure is logged and never retried.
type Handle struct {
	db *gorm.DB
}

// DB returns the live GORM handle, or (nil, false) when the process is
// running without a database.
func (h *Handle) DB() (*gorm.DB, bool) {
	if h == nil || h.db == nil {
		return nil, false
	}
	return h.db, true
}

// Connected reports whether a database connection is available.
func (h *Handle) Connected() bool {
	_, ok := h.DB()
	return ok
}

// Disconnected returns a Handle in the degraded no-database state.
func Disconnected() *Handle {
	return &Handle{}
}

// HandleFor wraps an already-open GORM connection. Used by tests that run
// against an in-memory database.
func HandleFor(db *gorm.DB) *Handle {
	return &Handle{db: db}
}

// NewHandle attempts the one-time database connection. When the database is
// not configured, or the connection or ping fails, the failure is logged and
// a disconnected Handle is returned — the server still starts and serves
// reads as empty results.
func NewHandle(cfg *config.Config, appLogger *zap.Logger) *Handle {
	if !cfg.DatabaseConfigured() {
		appLogger.Warn("Database not configured; running in degraded no-database mode")
		return Disconnected()
	}

	var gormLogLevel gormlogger.LogLevel
	switch cfg.LogLevel {
	case "silent", "fatal", "panic":
		gormLogLevel = gormlogger.Silent
	case "error":
		gormLogLevel = gormlogger.Error
	case "warn", "warning":
		gormLogLevel = gormlogger.Warn
	case "info", "debug":
		gormLogLevel = gormlogger.Info
	default:
		gormLogLevel = gormlogger.Warn
	}

	newLogger := gormlogger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  cfg.GinMode != "release",
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:      newLogger,
		PrepareStmt: true,
	})
	if err != nil {
		appLogger.Warn("Failed to connect to database; running in degraded no-database mode", zap.Error(err))
		return Disconnected()
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Warn("Failed to get underlying sql.DB; running in degraded no-database mode", zap.Error(err))
		return Disconnected()
	}

	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err = sqlDB.Ping(); err != nil {
		appLogger.Warn("Failed to ping database; running in degraded no-database mode", zap.Error(err))
		return Disconnected()
	}

	appLogger.Info("Successfully connected to the database",
		zap.String("host", cfg.DBHost), zap.String("dbname", cfg.DBName))
	return &Handle{db: db}
}

// Close closes the database connection if one was established.
func Close(h *Handle) {
	db, ok := h.DB()
	if !ok {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying SQL DB for closing: %v\n", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v\n", err)
	}
}
