package db

import (
	"fmt"
	"time"

	"bursary-portal/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm driver from the configured DB_DRIVER.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DatabaseURL), nil
	case config.DriverMySQL:
		return mysql.Open(cfg.MySQLDSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	}
	return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
}

func OpenGorm(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dial, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	level := logger.Warn
	if !cfg.IsProduction() {
		level = logger.Info
	}
	gdb, err := openGorm(dial, level)
	if err != nil {
		return nil, err
	}
	if log != nil {
		log.Info("gorm: connected", zap.String("driver", cfg.DBDriver))
	}
	return gdb, nil
}

// OpenGormWithDialector opens and pings an already built dialector.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	return openGorm(dial, logger.Silent)
}

func openGorm(dial gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	// The explicit Ping below runs after the pool is tuned, so gorm's own ping is skipped.
	gdb, err := gorm.Open(dial, &gorm.Config{
		Logger:               logger.Default.LogMode(level),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return gdb, nil
}
