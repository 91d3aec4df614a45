package main

import (
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	user, err := app.RequireUser(cmd.Context())
	if err != nil {
		return err
	}
	app.Printer.PrintUser(user)
	return nil
}
