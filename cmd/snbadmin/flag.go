package main

import (
	"fmt"
	"strings"

	"factory-monitor-service/internal/domain/services"
	"factory-monitor-service/internal/infrastructure/config"

	"github.com/spf13/cobra"
)

var flagCmd = &cobra.Command{
	Use:   "flag",
	Short: "Read or set the dashboard refresh flag",
}

var flagGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the refresh flag",
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, helper, err := openHelper(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		svc := services.NewRefreshFlagService(helper, services.NewNotifyService(config.GetConfig()))
		flag, err := svc.Get(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), flag)
		return nil
	},
}

var flagSetCmd = &cobra.Command{
	Use:       "set <Y|N>",
	Short:     "Set the refresh flag; Y also publishes a refresh notification",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{services.FlagYes, services.FlagNo},
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, helper, err := openHelper(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		notifier := services.NewNotifyService(config.GetConfig())
		defer notifier.Close()

		value := strings.ToUpper(args[0])
		if err := services.NewRefreshFlagService(helper, notifier).Set(cmd.Context(), value); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "refresh flag set to %s\n", value)
		return nil
	},
}

func init() {
	flagCmd.AddCommand(flagGetCmd, flagSetCmd)
	rootCmd.AddCommand(flagCmd)
}
