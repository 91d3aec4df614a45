package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/types"
)

var educationCmd = &cobra.Command{
	Use:   "education",
	Short: "Manage education entries on the selected résumé",
}

var educationAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an education entry",
	RunE:  runEducationAdd,
}

var educationUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an education entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEducationUpdate,
}

var educationRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an education entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEducationRemove,
}

var (
	eduDegree      string
	eduInstitution string
	eduLocation    string
	eduStartDate   string
	eduEndDate     string
	eduCurrent     bool
	eduDescription string
)

func init() {
	educationAddCmd.Flags().StringVar(&eduDegree, "degree", "", "Degree (required)")
	educationAddCmd.Flags().StringVar(&eduInstitution, "institution", "", "Institution (required)")
	educationAddCmd.Flags().StringVar(&eduLocation, "location", "", "Location")
	educationAddCmd.Flags().StringVar(&eduStartDate, "start", "", "Start date, YYYY-MM (required)")
	educationAddCmd.Flags().StringVar(&eduEndDate, "end", "", "End date, YYYY-MM")
	educationAddCmd.Flags().BoolVar(&eduCurrent, "current", false, "Still enrolled")
	educationAddCmd.Flags().StringVar(&eduDescription, "description", "", "Description")

	educationAddCmd.MarkFlagRequired("degree")
	educationAddCmd.MarkFlagRequired("institution")
	educationAddCmd.MarkFlagRequired("start")

	educationUpdateCmd.Flags().StringVar(&eduDegree, "degree", "", "New degree")
	educationUpdateCmd.Flags().StringVar(&eduInstitution, "institution", "", "New institution")
	educationUpdateCmd.Flags().StringVar(&eduLocation, "location", "", "New location")
	educationUpdateCmd.Flags().StringVar(&eduStartDate, "start", "", "New start date, YYYY-MM")
	educationUpdateCmd.Flags().StringVar(&eduEndDate, "end", "", "New end date, YYYY-MM")
	educationUpdateCmd.Flags().BoolVar(&eduCurrent, "current", false, "Still enrolled")
	educationUpdateCmd.Flags().StringVar(&eduDescription, "description", "", "New description")

	educationCmd.AddCommand(educationAddCmd, educationUpdateCmd, educationRemoveCmd)
	rootCmd.AddCommand(educationCmd)
}

func runEducationAdd(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}
	current, err := app.RequireCurrentCV()
	if err != nil {
		return err
	}

	edu, err := app.Educations.Create(cmd.Context(), &types.CreateEducationRequest{
		CV:          current.ID,
		Degree:      eduDegree,
		Institution: eduInstitution,
		Location:    eduLocation,
		StartDate:   eduStartDate,
		EndDate:     eduEndDate,
		IsCurrent:   eduCurrent,
		Description: eduDescription,
		Order:       len(current.Educations),
	})
	if err != nil {
		return fmt.Errorf("failed to add education: %w", err)
	}

	if _, err := app.RefreshCurrentCV(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Added education #%d (%s).\n", edu.ID, edu.Degree)
	return nil
}

func runEducationUpdate(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}
	current, err := app.RequireCurrentCV()
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid education id %q", args[0])
	}

	// Patches carry the full payload; unchanged fields keep the values
	// the selected résumé already holds.
	var existing *types.Education
	for i := range current.Educations {
		if current.Educations[i].ID == id {
			existing = &current.Educations[i]
			break
		}
	}
	if existing == nil {
		return fmt.Errorf("education %d is not on the selected résumé", id)
	}

	req := &types.CreateEducationRequest{
		CV:          current.ID,
		Degree:      existing.Degree,
		Institution: existing.Institution,
		Location:    existing.Location,
		StartDate:   existing.StartDate,
		EndDate:     existing.EndDate,
		IsCurrent:   existing.IsCurrent,
		Description: existing.Description,
		Order:       existing.Order,
	}
	changed := false
	for flag, target := range map[string]*string{
		"degree":      &req.Degree,
		"institution": &req.Institution,
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
		req.IsCurrent = eduCurrent
		changed = true
	}
	if !changed {
		return fmt.Errorf("nothing to update; pass at least one field flag")
	}

	edu, err := app.Educations.Update(cmd.Context(), id, req)
	if err != nil {
		return fmt.Errorf("failed to update education: %w", err)
	}

	if _, err := app.RefreshCurrentCV(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Updated education #%d (%s).\n", edu.ID, edu.Degree)
	return nil
}

func runEducationRemove(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}
	if _, err := app.RequireCurrentCV(); err != nil {
		return err
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid education id %q", args[0])
	}

	if err := app.Educations.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to remove education: %w", err)
	}

	if _, err := app.RefreshCurrentCV(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Removed education #%d.\n", id)
	return nil
}
