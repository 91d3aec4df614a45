package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/types"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage the contact block of the selected résumé",
}

var contactSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or replace the contact block",
	RunE:  runContactSet,
}

var (
	contactEmail     string
	contactPhone     string
	contactCity      string
	contactCountry   string
	contactLinkedin  string
	contactPortfolio string
)

func init() {
	contactSetCmd.Flags().StringVar(&contactEmail, "email", "", "Contact email (required)")
	contactSetCmd.Flags().StringVar(&contactPhone, "phone", "", "Phone number (required)")
	contactSetCmd.Flags().StringVar(&contactCity, "city", "", "City (required)")
	contactSetCmd.Flags().StringVar(&contactCountry, "country", "", "Country")
	contactSetCmd.Flags().StringVar(&contactLinkedin, "linkedin", "", "LinkedIn profile URL")
	contactSetCmd.Flags().StringVar(&contactPortfolio, "portfolio", "", "Portfolio URL")

	contactSetCmd.MarkFlagRequired("email")
	contactSetCmd.MarkFlagRequired("phone")
	contactSetCmd.MarkFlagRequired("city")

	contactCmd.AddCommand(contactSetCmd)
	rootCmd.AddCommand(contactCmd)
}

func runContactSet(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}
	current, err := app.RequireCurrentCV()
	if err != nil {
		return err
	}

	req := &types.CreateContactRequest{
		CV:           current.ID,
		Email:        contactEmail,
		PhoneNumber:  contactPhone,
		City:         contactCity,
		Country:      contactCountry,
		LinkedinURL:  contactLinkedin,
		PortfolioURL: contactPortfolio,
	}

	if current.Contact != nil {
		if _, err := app.Contacts.Update(cmd.Context(), current.Contact.ID, req); err != nil {
			return fmt.Errorf("failed to update contact: %w", err)
		}
	} else {
		if _, err := app.Contacts.Create(cmd.Context(), req); err != nil {
			return fmt.Errorf("failed to create contact: %w", err)
		}
	}

	if _, err := app.RefreshCurrentCV(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Contact saved.")
	return nil
}
