package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/linkdesk-io/linkdesk/internal/infrastructure/cache"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/config"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/database"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/email"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/migration"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/outbox"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/ratelimit"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/realtime"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/repository"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/scheduler"
	httpRouter "github.com/linkdesk-io/linkdesk/internal/interfaces/http"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

var (
	env                string
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the LinkDesk HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if err := checkMigrations(); err != nil {
		logger.Fatal("migration check failed", "error", err)
	}

	log := logger.NewLogger()

	// Redis backs login throttling and the cross-instance websocket
	// bridge. The server still works without it on a single instance.
	var limiter ratelimit.RateLimiter
	var bridge realtime.RedisBridge
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, login throttling and websocket fan-out disabled", "error", err)
	} else {
		defer redisClient.Close()
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
		bridge = realtime.NewRedisNotificationBridge(redisClient, log)
	}

	hub := realtime.NewHub(log, bridge)
	if err := hub.Start(); err != nil {
		logger.Warn("websocket bridge subscribe failed, cross-instance fan-out disabled", "error", err)
	}
	defer hub.Stop()

	mailer := email.NewSMTPService(&cfg.Email, log)

	dispatcher := outbox.NewDispatcher(
		repository.NewOutboxRepository(database.Get()),
		repository.NewNotificationRepository(database.Get()),
		hub,
		mailer,
		&cfg.Outbox,
		log,
	)

	router := httpRouter.NewRouter(database.Get(), hub, limiter, cfg, log)
	router.SetupRoutes()

	schedulerManager, err := scheduler.NewManager(log)
	if err != nil {
		logger.Fatal("failed to create scheduler", "error", err)
	}
	if err := schedulerManager.RegisterOutboxJob(dispatcher, cfg.Outbox.PollSeconds); err != nil {
		logger.Fatal("failed to register outbox job", "error", err)
	}
	if err := schedulerManager.RegisterInventoryJobs(router.RatingRefresher()); err != nil {
		logger.Fatal("failed to register inventory jobs", "error", err)
	}
	if err := schedulerManager.RegisterInvoiceJobs(router.OverdueSweeper()); err != nil {
		logger.Fatal("failed to register invoice jobs", "error", err)
	}
	schedulerManager.Start()
	defer schedulerManager.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func checkMigrations() error {
	if skipMigrationCheck {
		logger.Info("skipping migration check")
		return nil
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		logger.Warn("failed to get migration scripts path", "error", err)
		return nil
	}

	strategy := migration.NewGooseStrategy(scriptsPath, logger.NewLogger())
	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		logger.Warn("failed to check migration status", "error", err)
		return nil
	}

	logger.Info("current migration version", "version", version)
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
