package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"haitch/internal/infrastructure/config"
	"haitch/internal/infrastructure/database"
	"haitch/internal/infrastructure/migration"
	httpContainer "haitch/internal/interfaces/http"
	"haitch/internal/shared/logger"
)

var (
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the service desk HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
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

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	if err := handleMigrations(log); err != nil {
		log.Fatalw("migration handling failed", "error", err)
	}

	container := httpContainer.NewContainer(database.Get(), cfg, log)
	container.SetupRoutes()
	container.StartBackgroundServices()
	defer container.Shutdown()

	srv := &http.Server{
		Addr:        cfg.Server.GetAddr(),
		Handler:     container.GetEngine(),
		ReadTimeout: 30 * time.Second,
		// No WriteTimeout: assistant chat streams stay open well past any
		// sensible fixed deadline.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(log logger.Interface) error {
	if skipMigrationCheck {
		log.Infow("skipping migration check")
		return nil
	}

	if !autoMigrate {
		return nil
	}

	if env == "production" {
		log.Warnw("auto-migration is enabled in production environment - this is not recommended")
	}

	log.Infow("running auto-migration")
	manager := migration.NewManager(env)
	if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	log.Infow("auto-migration completed successfully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
