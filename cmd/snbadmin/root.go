package main

import (
	"context"
	"fmt"
	"os"

	"factory-monitor-service/internal/infrastructure/config"
	"factory-monitor-service/internal/infrastructure/database"
	Logger "factory-monitor-service/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "snbadmin",
	Short: "Maintenance commands for the factory monitor service",
	Long: `Runs schema migration, manages login accounts and reads or raises the
dashboard refresh flag against the database configured for the service.`,
	SilenceUsage: true,
}

// Execute 執行根指令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		if err := godotenv.Load(envFile); err != nil && envFile != ".env" {
			fmt.Fprintf(os.Stderr, "無法載入 %s: %v\n", envFile, err)
		}
		cfg := config.GetConfig()
		_ = Logger.SetupLogger(Logger.Options{Level: cfg.LogLevel, Service: "snbadmin"})
	})

	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "env file to load before reading configuration")
}

// openHelper 依設定開啟資料庫
func openHelper(ctx context.Context) (*database.ConnectionPool, *database.Helper, error) {
	pool, err := database.NewConnectionPool(config.GetConfig())
	if err != nil {
		return nil, nil, err
	}
	if err := pool.HealthCheck(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("資料庫無法連線: %w", err)
	}
	return pool, database.NewHelper(pool.GetDB()), nil
}
