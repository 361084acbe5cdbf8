package main

import (
	"errors"
	"fmt"

	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

var (
	userName     string
	userDeptNo   string
	userDeptName string
	userEmail    string
	userPassword string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage login accounts (SYSPASMI)",
}

var userCreateCmd = &cobra.Command{
	Use:   "create <id>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if userPassword == "" {
			return errors.New("--password is required")
		}
		pool, helper, err := openHelper(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		name := userName
		if name == "" {
			name = args[0]
		}
		err = database.CreateUser(cmd.Context(), helper, models.Person{
			PassID: args[0],
			PassNa: name,
			DeptNo: userDeptNo,
			DeptNa: userDeptName,
			Email:  userEmail,
		}, userPassword, "snbadmin")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "user %s created\n", args[0])
		return nil
	},
}

var userPasswdCmd = &cobra.Command{
	Use:   "passwd <id>",
	Short: "Reset an account password and revoke its tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if userPassword == "" {
			return errors.New("--password is required")
		}
		pool, helper, err := openHelper(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := database.SetPassword(cmd.Context(), helper, args[0], userPassword); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "password of %s updated\n", args[0])
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&userName, "name", "", "display name (defaults to id)")
	userCreateCmd.Flags().StringVar(&userDeptNo, "dept", "", "department number")
	userCreateCmd.Flags().StringVar(&userDeptName, "dept-name", "", "department name")
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "email")
	for _, c := range []*cobra.Command{userCreateCmd, userPasswdCmd} {
		c.Flags().StringVar(&userPassword, "password", "", "password")
	}

	userCmd.AddCommand(userCreateCmd, userPasswdCmd)
	rootCmd.AddCommand(userCmd)
}
