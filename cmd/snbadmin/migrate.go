package main

import (
	"fmt"

	"factory-monitor-service/internal/infrastructure/config"
	"factory-monitor-service/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or extend tables and seed default rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, helper, err := openHelper(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		cfg := config.GetConfig()
		if err := database.AutoMigrate(pool.GetDB(), "auto"); err != nil {
			return err
		}
		if err := database.EnsureDefaults(cmd.Context(), helper, cfg); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migration done")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
