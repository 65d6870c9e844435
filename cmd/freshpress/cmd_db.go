package main

import (
	"github.com/spf13/cobra"

	"github.com/freshpress/freshpress/config"
	"github.com/freshpress/freshpress/database/seeders"
	"github.com/freshpress/freshpress/pkg/database"
	"github.com/freshpress/freshpress/pkg/migration"
)

func withDB(fn func() error) error {
	if err := config.Load(); err != nil {
		return err
	}
	if err := database.Connect(); err != nil {
		return err
	}
	return fn()
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func() error {
			return migration.New(database.DB).Run()
		})
	},
}

var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Roll back the most recent migration batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func() error {
			return migration.New(database.DB).Rollback()
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func() error {
			return migration.New(database.DB).Status()
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all registered database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func() error {
			return seeders.RunAll(database.DB)
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, migrateRollbackCmd, migrateStatusCmd, seedCmd)
}
