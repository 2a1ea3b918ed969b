package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tpc/ocean/internal/config"
	"github.com/tpc/ocean/internal/db"
	"github.com/tpc/ocean/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log := logger.New(cfg.Environment, cfg.LogLevel)

		cfg.DB.AutoMigrate = true
		database, err := db.New(cfg, log)
		if err != nil {
			return err
		}
		sqlDB, err := database.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	},
}
