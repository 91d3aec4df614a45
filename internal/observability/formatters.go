// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the terminal
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintUser outputs the authenticated account summary.
func (p *Printer) PrintUser(user *types.User) {
	if user == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s %s\n", user.FirstName, user.LastName))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", user.Email))
	plan := "free"
	if user.IsPremiumSubscriber {
		plan = "premium"
	}
	sb.WriteString(fmt.Sprintf("Plan:   %s", plan))

	p.printBox("ACCOUNT", sb.String())
}

// PrintCVList outputs a one-line-per-résumé listing, marking the one
// currently being edited.
func (p *Printer) PrintCVList(cvs []types.CV, currentID int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %d\n\n", len(cvs)))

	for i, cv := range cvs {
		marker := " "
		if cv.ID == currentID {
			marker = "*"
		}
		title := cv.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s #%-4d %s", marker, cv.ID, title))
		if i < len(cvs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RESUMES", sb.String())
}

// PrintCV outputs a human-readable summary of one résumé with its
// section counts and a preview of each section.
func (p *Printer) PrintCV(cv *types.CV) {
	if cv == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:  %s\n", cv.Title))
	if cv.Summary != "" {
		summary := cv.Summary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("About:  %s\n", summary))
	}
	if cv.Contact != nil {
		sb.WriteString(fmt.Sprintf("Contact: %s, %s\n", cv.Contact.Email, cv.Contact.City))
	}
	sb.WriteString("\n")

	if len(cv.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(cv.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := cv.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d/10)\n", skill.Name, skill.Level))
		}
		if len(cv.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cv.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(cv.Experiences) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(cv.Experiences), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := cv.Experiences[i]
			sb.WriteString(fmt.Sprintf("  • %s — %s\n", exp.Title, exp.Company))
		}
		if len(cv.Experiences) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cv.Experiences)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(cv.Educations) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(cv.Educations), maxItemsToShow)
		for i := 0; i < count; i++ {
			edu := cv.Educations[i]
			sb.WriteString(fmt.Sprintf("  • %s — %s\n", edu.Degree, edu.Institution))
		}
		if len(cv.Educations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cv.Educations)-maxItemsToShow))
		}
	}

	p.printBox(fmt.Sprintf("RESUME #%d", cv.ID), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExport outputs the result of a PDF export.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExport(filename string, size int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:  %s\n", filename))
	sb.WriteString(fmt.Sprintf("Size:  %d bytes", size))
	p.printBox("PDF EXPORT", sb.String())
}
