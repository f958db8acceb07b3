package cmd

import (
	"fmt"
	"log"
	"os"

	"film-catalog/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "film-catalog",
	Short: "film-catalog - film and genre catalog service",
	Long: `film-catalog serves the film catalog HTTP API and ships the
maintenance commands that go with it:
  serve     run the HTTP server
  migrate   apply or roll back the database schema
  seed      create the default Admin and User accounts`,
	SilenceUsage: true,
}

// Execute runs the root command. It is called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// bootstrap loads the config and builds the logger shared by every command.
func bootstrap() (*utils.Config, *zap.Logger, error) {
	config, err := utils.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	return config, logger, nil
}
