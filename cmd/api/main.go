package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bursary-portal/internal/adapter/blob"
	httpadp "bursary-portal/internal/adapter/http"
	"bursary-portal/internal/adapter/middleware"
	"bursary-portal/internal/adapter/repository/gormrepo"
	"bursary-portal/internal/config"
	"bursary-portal/internal/domain/document"
	"bursary-portal/internal/infrastructure/cache"
	"bursary-portal/internal/infrastructure/db"
	"bursary-portal/internal/infrastructure/logger"
	"bursary-portal/internal/infrastructure/metrics"
	"bursary-portal/internal/infrastructure/storage"
	"bursary-portal/internal/infrastructure/token"
	accountuc "bursary-portal/internal/usecase/account"
	appuc "bursary-portal/internal/usecase/application"
	refuc "bursary-portal/internal/usecase/reference"
	reviewuc "bursary-portal/internal/usecase/review"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg, log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := gormrepo.Migrate(gdb); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := gormrepo.SeedLevels(ctx, gdb); err != nil {
		return fmt.Errorf("seed levels: %w", err)
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	refs := gormrepo.NewReferenceRepository(gdb)
	apps := gormrepo.NewApplicationRepository(gdb)
	tx := gormrepo.NewGormUoW(gdb)
	accounts := accountuc.NewUsecase(gormrepo.NewAccountRepository(gdb), tx,
		token.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL), log)

	probes := []httpadp.Probe{{Name: "database", Ping: func(ctx context.Context) error {
		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}}}

	routes := httpadp.Routes{
		Accounts:     httpadp.NewAccountHandler(accounts, log),
		References:   httpadp.NewReferenceHandler(refuc.NewUsecase(refs), log),
		Applications: httpadp.NewApplicationHandler(appuc.NewUsecase(refs, apps, store, tx, m, log), int64(cfg.MaxUploadMB)<<20, log),
		Reviews:      httpadp.NewReviewHandler(reviewuc.NewUsecase(tx, m, log), log),
		Auth:         middleware.Auth(accounts, log),
		Metrics:      promhttp.Handler(),
	}

	rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	switch {
	case err == nil:
		defer rdb.Close()
		routes.Idempotency = middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log)
		probes = append(probes, httpadp.Probe{Name: "redis", Ping: func(ctx context.Context) error { return cache.Ping(ctx, rdb) }})
	case cfg.IsProduction():
		return fmt.Errorf("open redis: %w", err)
	default:
		log.Warn("redis unavailable, idempotency disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	routes.Health = httpadp.NewHandler(probes...)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Recover(), middleware.RequestLogger(log))
	routes.Register(e)

	addr := ":" + cfg.AppPort
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("db_driver", cfg.DBDriver), zap.Bool("drive", cfg.DriveEnabled))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// openStore picks Google Drive when enabled, otherwise the local media directory.
func openStore(ctx context.Context, cfg *config.Config) (document.Store, error) {
	if !cfg.DriveEnabled {
		s, err := blob.NewLocalStore(cfg.MediaRoot)
		if err != nil {
			return nil, fmt.Errorf("open media root: %w", err)
		}
		return s, nil
	}
	svc, err := storage.NewDriveService(ctx, cfg.DriveKeyFile)
	if err != nil {
		return nil, fmt.Errorf("open google drive: %w", err)
	}
	return blob.NewDriveStore(svc, cfg.DriveFolderID), nil
}
