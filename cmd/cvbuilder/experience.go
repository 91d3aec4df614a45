package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/types"
)

var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Manage experience entries on the selected résumé",
}

var experienceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an experience entry",
	RunE:  runExperienceAdd,
}

var experienceUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an experience entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperienceUpdate,
}

var experienceRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an experience entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperienceRemove,
}

var (
	expTitle       string
	expCompany     string
	expLocation    string
	expStartDate   string
	expEndDate     string
	expCurrent     bool
	expDescription string
)

func init() {
	experienceAddCmd.Flags().StringVar(&expTitle, "title", "", "Job title (required)")
	experienceAddCmd.Flags().StringVar(&expCompany, "company", "", "Company (required)")
	experienceAddCmd.Flags().StringVar(&expLocation, "location", "", "Location")
	experienceAddCmd.Flags().StringVar(&expStartDate, "start", "", "Start date, YYYY-MM (required)")
	experienceAddCmd.Flags().StringVar(&expEndDate, "end", "", "End date, YYYY-MM")
	experienceAddCmd.Flags().BoolVar(&expCurrent, "current", false, "This is the current position")
	experienceAddCmd.Flags().StringVar(&expDescription, "description", "", "Description")

	experienceAddCmd.MarkFlagRequired("title")
	experienceAddCmd.MarkFlagRequired("company")
	experienceAddCmd.MarkFlagRequired("start")

	experienceUpdateCmd.Flags().StringVar(&expTitle, "title", "", "New job title")
	experienceUpdateCmd.Flags().StringVar(&expCompany, "company", "", "New company")
	experienceUpdateCmd.Flags().StringVar(&expLocation, "location", "", "New location")
	experienceUpdateCmd.Flags().StringVar(&expStartDate, "start", "", "New start date, YYYY-MM")
	experienceUpdateCmd.Flags().StringVar(&expEndDate, "end", "", "New end date, YYYY-MM")
	experienceUpdateCmd.Flags().BoolVar(&expCurrent, "current", false, "This is the current position")
	experienceUpdateCmd.Flags().StringVar(&expDescription, "description", "", "New description")

	experienceCmd.AddCommand(experienceAddCmd, experienceUpdateCmd, experienceRemoveCmd)
	rootCmd.AddCommand(experienceCmd)
}

func runExperienceAdd(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}
	current, err := app.RequireCurrentCV()
	if err != nil {
		return err
	}

	exp, err := app.Experiences.Create(cmd.Context(), &types.CreateExperienceRequest{
		CV:          current.ID,
		Title:       expTitle,
		Company:     expCompany,
		Location:    expLocation,
		StartDate:   expStartDate,
		EndDate:     expEndDate,
		IsCurrent:   expCurrent,
		Description: expDescription,
		Order:       len(current.Experiences),
	})
	if err != nil {
		return fmt.Errorf("failed to add experience: %w", err)
	}

	if _, err := app.RefreshCurrentCV(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Added experience #%d (%s at %s).\n", exp.ID, exp.Title, exp.Company)
	return nil
}

func runExperienceUpdate(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}
	current, err := app.RequireCurrentCV()
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid experience id %q", args[0])
	}

	// Patches carry the full payload; unchanged fields keep the values
	// the selected résumé already holds.
	var existing *types.Experience
	for i := range current.Experiences {
		if current.Experiences[i].ID == id {
			existing = &current.Experiences[i]
			break
		}
	}
	if existing == nil {
		return fmt.Errorf("experience %d is not on the selected résumé", id)
	}

	req := &types.CreateExperienceRequest{
		CV:          current.ID,
		Title:       existing.Title,
		Company:     existing.Company,
		Location:    existing.Location,
		StartDate:   existing.StartDate,
		EndDate:     existing.EndDate,
		IsCurrent:   existing.IsCurrent,
		Description: existing.Description,
		Order:       existing.Order,
	}
	changed := false
	for flag, target := range map[string]*string{
		"title":       &req.Title,
		"company":     &req.Company,
		"location":    &req.Location,
		"start":       &req.StartDate,
		"end":         &req.EndDate,
		"description": &req.Description,
	} {
		if cmd.Flags().Changed(flag) {
			*target, _ = cmd.Flags().GetString(flag)
			changed = true
		}
	}
	if cmd.Flags().Changed("current") {
		req.IsCurrent = expCurrent
		changed = true
	}
	if !changed {
		return fmt.Errorf("nothing to update; pass at least one field flag")
	}

	exp, err := app.Experiences.Update(cmd.Context(), id, req)
	if err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
	}

	if _, err := app.RefreshCurrentCV(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Updated experience #%d (%s at %s).\n", exp.ID, exp.Title, exp.Company)
	return nil
}

func runExperienceRemove(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}
	if _, err := app.RequireCurrentCV(); err != nil {
		return err
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid experience id %q", args[0])
	}

	if err := app.Experiences.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to remove experience: %w", err)
	}

	if _, err := app.RefreshCurrentCV(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Removed experience #%d.\n", id)
	return nil
}
