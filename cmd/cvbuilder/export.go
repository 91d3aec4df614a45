package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/pdf"
	"github.com/jonathan/cv-builder/internal/render"
	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export a résumé as a styled PDF",
	Long:  "Render a résumé through one of the three templates (modern, classic, minimalist) and write the PDF next to you. PDF export requires a premium subscription; --from-file renders a local JSON document instead of a remote résumé.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var (
	exportTemplate string
	exportOut      string
	exportFromFile string
)

func init() {
	exportCmd.Flags().StringVar(&exportTemplate, "template", "modern", "Template: modern, classic or minimalist")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output path (defaults to the derived filename in the current directory)")
	exportCmd.Flags().StringVar(&exportFromFile, "from-file", "", "Render a local CV JSON file instead of a remote résumé")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	template, err := render.ParseTemplateID(exportTemplate)
	if err != nil {
		return err
	}

	var cv *types.CV
	if exportFromFile != "" {
		cv, err = loadCVFromFile(exportFromFile)
	} else {
		cv, err = loadRemoteCV(cmd, args)
	}
	if err != nil {
		return err
	}

	doc, err := render.Render(cv, template)
	if err != nil {
		return err
	}
	data, err := pdf.NewSerializer().Serialize(doc)
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	out := exportOut
	if out == "" {
		out = render.Filename(cv.Title, time.Now())
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	if app.Config.Verbose {
		app.Printer.PrintExport(filepath.Base(out), len(data))
	} else {
		fmt.Fprintf(os.Stdout, "Exported %s (%d bytes).\n", out, len(data))
	}
	return nil
}

// loadRemoteCV resolves the résumé to export (explicit id or the one
// selected for editing) and checks the export entitlement.
func loadRemoteCV(cmd *cobra.Command, args []string) (*types.CV, error) {
	user, err := app.RequireUser(cmd.Context())
	if err != nil {
		return nil, err
	}
	if !user.IsPremiumSubscriber {
		return nil, fmt.Errorf("PDF export requires a premium subscription")
	}

	var id int
	if len(args) == 1 {
		id, err = strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid résumé id %q", args[0])
		}
	} else {
		current, err := app.RequireCurrentCV()
		if err != nil {
			return nil, err
		}
		id = current.ID
	}

	cv, err := app.CVs.GetByID(cmd.Context(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to load résumé %d: %w", id, err)
	}
	return cv, nil
}

// loadCVFromFile reads and schema-validates a local CV JSON document.
func loadCVFromFile(path string) (*types.CV, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := schemas.ValidateCV(data); err != nil {
		return nil, err
	}

	var cv types.CV
	if err := json.Unmarshal(data, &cv); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cv, nil
}
