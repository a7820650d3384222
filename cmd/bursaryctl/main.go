// Command bursaryctl is the operator tool: schema, reference data and staff accounts.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bursary-portal/internal/config"
	"bursary-portal/internal/infrastructure/db"
	"bursary-portal/internal/infrastructure/logger"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	root := newRootCmd(openFromEnv, os.Stdout)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// openFromEnv connects with the same settings the API server uses.
func openFromEnv(_ context.Context) (*gorm.DB, *zap.Logger, error) {
	cfg := config.Load()
	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	gdb, err := db.OpenGorm(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return gdb, log, nil
}
