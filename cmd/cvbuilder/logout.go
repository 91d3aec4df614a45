package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear local credentials",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	// Local credentials are cleared even when the server-side revocation
	// fails; the failure is only reported.
	revokeErr := app.Auth.Logout(cmd.Context())
	app.Session.Logout()

	if revokeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: token revocation failed: %v\n", revokeErr)
	}
	fmt.Fprintln(os.Stdout, "Signed out.")
	return nil
}
