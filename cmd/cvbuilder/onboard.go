package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/onboarding"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Create a résumé through the guided five-step flow",
	Long:  "Walk through the five onboarding steps (document, contact, skills, experience, education) and finish with a complete résumé selected for editing.",
	RunE:  runOnboard,
}

var onboardStep string

func init() {
	onboardCmd.Flags().StringVar(&onboardStep, "step", "", "Start at a specific step (document, contact, skills, experience, education)")

	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}

	start, err := onboarding.ParseStep(onboardStep)
	if err != nil {
		return err
	}

	stepCount := len(onboarding.Registry)
	position := 0
	flow := onboarding.New(onboarding.Services{
		CVs:         app.CVs,
		Contacts:    app.Contacts,
		Skills:      app.Skills,
		Experiences: app.Experiences,
		Educations:  app.Educations,
	}, app.Session, newTerminalPrompter(os.Stdin, os.Stdout), func(def onboarding.StepDefinition) {
		position++
		fmt.Fprintf(os.Stdout, "Step %d/%d: %s\n", position, stepCount, def.Title)
	})

	if err := flow.Run(cmd.Context(), start); err != nil {
		return err
	}

	cv := app.Session.CurrentCV()
	fmt.Fprintf(os.Stdout, "Onboarding complete. Résumé #%d is selected for editing.\n", cv.ID)
	if app.Config.Verbose {
		app.Printer.PrintCV(cv)
	}
	return nil
}
