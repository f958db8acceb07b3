package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"film-catalog/internal/data/repository"
	"film-catalog/internal/usecase"
	"film-catalog/internal/wire"
	"film-catalog/pkg/cache"
	"film-catalog/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	sessionSweepInterval = time.Hour
	sessionRetention     = 24 * time.Hour
)

var (
	serveMigrate bool
	serveSeed    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		logger.Info("Starting application",
			zap.String("app", config.App.Name),
			zap.String("port", config.App.Port),
			zap.Bool("debug", config.App.Debug),
		)

		if serveMigrate {
			if err := database.RunMigrations(config.Database, database.MigrateUp, logger); err != nil {
				logger.Error("Failed to run migrations", zap.Error(err))
				return err
			}
		}

		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Error("Failed to connect to database", zap.Error(err))
			return err
		}
		defer db.Close()

		logger.Info("Database connected successfully")

		blacklist, err := cache.NewTokenBlacklist(config.Redis, logger)
		if err != nil {
			logger.Error("Failed to connect to redis", zap.Error(err))
			return err
		}
		defer blacklist.Close()

		repos := repository.NewRepository(db, logger)
		app := wire.Wiring(repos, config, blacklist, logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if serveSeed {
			if err := app.Service.Seed.SeedDefaultUsers(ctx); err != nil {
				logger.Error("Failed to seed default users", zap.Error(err))
				return err
			}
		}

		if app.RateLimiter != nil {
			go app.RateLimiter.Run(ctx)
		}
		go sweepSessions(ctx, app.Service.Auth, logger)

		return APIServer(ctx, app.Router, config.App.Port, config.App.ShutdownTimeout, logger)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "apply pending migrations before serving")
	serveCmd.Flags().BoolVar(&serveSeed, "seed", false, "create the default Admin and User accounts before serving")
}

func sweepSessions(ctx context.Context, auth usecase.AuthService, log *zap.Logger) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := auth.CleanExpiredSessions(ctx, sessionRetention); err != nil {
				log.Warn("Session sweep failed", zap.Error(err))
			}
		}
	}
}
