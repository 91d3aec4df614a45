package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/types"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	RunE:  runLogin,
}

var loginGoogleCmd = &cobra.Command{
	Use:   "google",
	Short: "Sign in with a Google ID token",
	Long:  "Exchange a Google ID token (obtained out of band for the configured OAuth client) for an API session.",
	RunE:  runLoginGoogle,
}

var (
	loginEmail    string
	loginPassword string
	loginIDToken  string
)

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")

	loginGoogleCmd.Flags().StringVar(&loginIDToken, "id-token", "", "Google ID token (required)")
	loginGoogleCmd.MarkFlagRequired("id-token")

	loginCmd.AddCommand(loginGoogleCmd)
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if loginEmail == "" || loginPassword == "" {
		return fmt.Errorf("--email and --password are required")
	}

	_, err := app.Auth.Login(cmd.Context(), &types.LoginRequest{
		Email:    loginEmail,
		Password: loginPassword,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	// Tokens are stored; resolve the user behind them.
	user, err := app.Auth.CurrentUser(cmd.Context())
	if err != nil {
		return fmt.Errorf("signed in but failed to load the account: %w", err)
	}
	app.Session.SetUser(user)

	fmt.Fprintf(os.Stdout, "Welcome back, %s.\n", user.FirstName)
	return nil
}

func runLoginGoogle(cmd *cobra.Command, args []string) error {
	if app.Config.GoogleClientID == "" {
		fmt.Fprintln(os.Stderr, "Warning: GOOGLE_CLIENT_ID is not configured; the backend must accept this token's audience.")
	}

	user, err := app.Auth.GoogleLogin(cmd.Context(), loginIDToken)
	if err != nil {
		return fmt.Errorf("google sign-in failed: %w", err)
	}
	app.Session.SetUser(user)

	fmt.Fprintf(os.Stdout, "Welcome, %s.\n", user.FirstName)
	return nil
}
