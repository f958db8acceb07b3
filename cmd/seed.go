package cmd

import (
	"film-catalog/internal/data/repository"
	"film-catalog/internal/usecase"
	"film-catalog/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default Admin and User accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Error("Failed to connect to database", zap.Error(err))
			return err
		}
		defer db.Close()

		seeder := usecase.NewSeedService(repository.NewRepository(db, logger), config.Seed, logger)
		return seeder.SeedDefaultUsers(cmd.Context())
	},
}
