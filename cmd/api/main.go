package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barbearia-agenda/internal/adminauth"
	"github.com/BruksfildServices01/barbearia-agenda/internal/audit"
	"github.com/BruksfildServices01/barbearia-agenda/internal/config"
	dbpkg "github.com/BruksfildServices01/barbearia-agenda/internal/db"
	"github.com/BruksfildServices01/barbearia-agenda/internal/domain/shop"
	infraRepo "github.com/BruksfildServices01/barbearia-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/barbearia-agenda/internal/infra/storage"
	"github.com/BruksfildServices01/barbearia-agenda/internal/middleware"
	"github.com/BruksfildServices01/barbearia-agenda/internal/monitoring"
	"github.com/BruksfildServices01/barbearia-agenda/internal/routes"
	"github.com/BruksfildServices01/barbearia-agenda/internal/timezone"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.Load()

	if !timezone.IsValid(cfg.ShopTimezone) {
		logger.Warn("invalid SHOP_TIMEZONE, using default", "tz", cfg.ShopTimezone, "default", timezone.DefaultTimezone)
	}
	shopCfg := shop.Default(timezone.Location(cfg.ShopTimezone))

	monitoring.Init()

	// ======================================================
	// 🔧 STORAGE + AUDITORIA
	// ======================================================
	deps := routes.Deps{
		Shop:             shopCfg,
		IncludeCancelled: cfg.AdminIncludeCancelled,
		Logger:           logger,
	}

	var auditWriter audit.Writer = audit.NewSlogWriter(logger)

	switch cfg.StorageDriver {
	case config.StorageMemory:
		deps.Repo = infraRepo.NewAppointmentMemoryRepository()
		logger.Warn("using in-memory storage, data is lost on restart")

	case config.StoragePostgres:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			logger.Error("failed to connect database", "err", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbpkg.Close(db); err != nil {
				logger.Error("failed to close database", "err", err)
			}
		}()

		auditLogger := audit.New(db)
		auditWriter = auditLogger
		deps.AuditLogs = auditLogger
		deps.Repo = infraRepo.NewAppointmentGormRepository(db)

	default:
		logger.Error("unknown STORAGE_DRIVER", "driver", cfg.StorageDriver)
		os.Exit(1)
	}

	dispatcher := audit.NewDispatcher(auditWriter, logger)
	deps.Audit = dispatcher

	// ======================================================
	// 🔐 ADMIN
	// ======================================================
	auth, err := adminauth.NewStatic(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash)
	if err != nil {
		logger.Error("invalid admin credentials config", "err", err)
		os.Exit(1)
	}
	deps.Auth = auth
	deps.Tokens = adminauth.NewIssuer(cfg.JWTSecret)

	if cfg.JWTSecret == "changeme" {
		logger.Warn("JWT_SECRET is using the default value")
	}

	// ======================================================
	// 🚦 RATE LIMIT (opcional)
	// ======================================================
	if cfg.RedisEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer rdb.Close()

		deps.RateLimiter = middleware.NewRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute, "booking", logger)
	}

	// ======================================================
	// 📄 RELATÓRIOS (opcional)
	// ======================================================
	if cfg.ReportsEnabled() {
		deps.Reports = storage.NewS3ReportUploader(storage.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server running", "addr", cfg.Addr(), "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "err", err)
	}

	// só depois do Shutdown: nenhum handler dispara eventos a partir daqui
	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Error("audit queue not drained", "err", err)
	}

	logger.Info("server stopped")
}
