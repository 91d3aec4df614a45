package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/types"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	RunE:  runRegister,
}

var (
	registerEmail           string
	registerFirstName       string
	registerLastName        string
	registerPassword        string
	registerPasswordConfirm string
)

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email address")
	registerCmd.Flags().StringVar(&registerFirstName, "first-name", "", "First name")
	registerCmd.Flags().StringVar(&registerLastName, "last-name", "", "Last name")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Password (min 8 characters)")
	registerCmd.Flags().StringVar(&registerPasswordConfirm, "password-confirm", "", "Password confirmation")

	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("first-name")
	registerCmd.MarkFlagRequired("last-name")
	registerCmd.MarkFlagRequired("password")
	registerCmd.MarkFlagRequired("password-confirm")

	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	user, err := app.Auth.Register(cmd.Context(), &types.RegisterRequest{
		Email:           registerEmail,
		FirstName:       registerFirstName,
		LastName:        registerLastName,
		Password:        registerPassword,
		PasswordConfirm: registerPasswordConfirm,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	app.Session.SetUser(user)
	fmt.Fprintf(os.Stdout, "Welcome, %s. You are signed in.\n", user.FirstName)
	return nil
}
