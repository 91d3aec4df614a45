package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/types"
)

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Manage résumé documents",
}

var cvListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your résumés",
	RunE:  runCVList,
}

var cvCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new résumé and select it for editing",
	RunE:  runCVCreate,
}

var cvShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Preview a résumé",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCVShow,
}

var cvUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update title or summary of the selected résumé",
	RunE:  runCVUpdate,
}

var cvUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Select a résumé for editing",
	Args:  cobra.ExactArgs(1),
	RunE:  runCVUse,
}

var (
	cvTitle   string
	cvSummary string
)

func init() {
	cvCreateCmd.Flags().StringVar(&cvTitle, "title", "", "Résumé title (required)")
	cvCreateCmd.Flags().StringVar(&cvSummary, "summary", "", "Professional summary")
	cvCreateCmd.MarkFlagRequired("title")

	cvUpdateCmd.Flags().StringVar(&cvTitle, "title", "", "New title")
	cvUpdateCmd.Flags().StringVar(&cvSummary, "summary", "", "New summary")

	cvCmd.AddCommand(cvListCmd, cvCreateCmd, cvShowCmd, cvUpdateCmd, cvUseCmd)
	rootCmd.AddCommand(cvCmd)
}

func runCVList(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}

	cvs, err := app.CVs.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list résumés: %w", err)
	}
	if len(cvs) == 0 {
		fmt.Fprintln(os.Stdout, "No résumés yet. Run 'cvbuilder onboard' to create one.")
		return nil
	}

	currentID := 0
	if current := app.Session.CurrentCV(); current != nil {
		currentID = current.ID
	}
	app.Printer.PrintCVList(cvs, currentID)
	return nil
}

func runCVCreate(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}

	cv, err := app.CVs.Create(cmd.Context(), &types.CreateCVRequest{
		Title:   cvTitle,
		Summary: cvSummary,
	})
	if err != nil {
		return fmt.Errorf("failed to create résumé: %w", err)
	}

	app.Session.SetCurrentCV(cv)
	fmt.Fprintf(os.Stdout, "Created résumé #%d and selected it for editing.\n", cv.ID)
	return nil
}

func runCVShow(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}

	var id int
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid résumé id %q", args[0])
		}
		id = parsed
	} else {
		current, err := app.RequireCurrentCV()
		if err != nil {
			return err
		}
		id = current.ID
	}

	cv, err := app.CVs.GetByID(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to load résumé %d: %w", id, err)
	}
	app.Printer.PrintCV(cv)
	return nil
}

func runCVUpdate(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}
	current, err := app.RequireCurrentCV()
	if err != nil {
		return err
	}

	req := &types.UpdateCVRequest{}
	if cmd.Flags().Changed("title") {
		req.Title = &cvTitle
	}
	if cmd.Flags().Changed("summary") {
		req.Summary = &cvSummary
	}
	if req.Title == nil && req.Summary == nil {
		return fmt.Errorf("nothing to update; pass --title or --summary")
	}

	if _, err := app.CVs.Update(cmd.Context(), current.ID, req); err != nil {
		return fmt.Errorf("failed to update résumé: %w", err)
	}
	cv, err := app.RefreshCurrentCV(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Updated résumé #%d.\n", cv.ID)
	return nil
}

func runCVUse(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid résumé id %q", args[0])
	}

	cv, err := app.CVs.GetByID(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to load résumé %d: %w", id, err)
	}

	app.Session.SetCurrentCV(cv)
	fmt.Fprintf(os.Stdout, "Résumé #%d (%s) selected for editing.\n", cv.ID, cv.Title)
	return nil
}
