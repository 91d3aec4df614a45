// Package render maps a résumé object into a declarative document tree,
// one pure function per visual template. No function in this package
// touches the network or the rendering engine.
package render

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/cv-builder/internal/doctree"
	"github.com/jonathan/cv-builder/internal/types"
)

// TemplateID selects one of the three visual templates.
type TemplateID string

// Available templates.
const (
	TemplateModern     TemplateID = "modern"
	TemplateClassic    TemplateID = "classic"
	TemplateMinimalist TemplateID = "minimalist"
)

// Templates lists the valid template identifiers.
func Templates() []TemplateID {
	return []TemplateID{TemplateModern, TemplateClassic, TemplateMinimalist}
}

// ParseTemplateID validates a user-supplied template name.
func ParseTemplateID(s string) (TemplateID, error) {
	switch TemplateID(s) {
	case TemplateModern, TemplateClassic, TemplateMinimalist:
		return TemplateID(s), nil
	case "":
		return TemplateModern, nil
	}
	return "", fmt.Errorf("unknown template %q (expected modern, classic or minimalist)", s)
}

// Render builds the document tree for cv with the selected template.
// It is a pure function of its inputs: identical cv and template always
// produce an identical tree.
func Render(cv *types.CV, template TemplateID) (*doctree.Document, error) {
	if cv == nil {
		return nil, fmt.Errorf("cv is nil")
	}
	switch template {
	case TemplateModern:
		return renderModern(cv), nil
	case TemplateClassic:
		return renderClassic(cv), nil
	case TemplateMinimalist:
		return renderMinimalist(cv), nil
	}
	return nil, fmt.Errorf("unknown template %q", template)
}

// displayName derives the header name from the contact email's local
// part; "Nom" is the placeholder when no contact exists.
func displayName(cv *types.CV) string {
	if cv.Contact != nil && cv.Contact.Email != "" {
		if at := strings.IndexByte(cv.Contact.Email, '@'); at > 0 {
			return cv.Contact.Email[:at]
		}
		return cv.Contact.Email
	}
	return "Nom"
}

// cityLine joins city and optional country.
func cityLine(contact *types.Contact) string {
	if contact.Country != "" {
		return contact.City + ", " + contact.Country
	}
	return contact.City
}

// dateRange formats the start–end range of an entry. A current entry
// always renders the template's sentinel, never an end date, even when
// an end date value is present in the record.
func dateRange(start, end string, isCurrent bool, sentinel string, format func(string) string) string {
	from := format(start)
	if isCurrent {
		return from + " - " + sentinel
	}
	if end == "" {
		return from + " -"
	}
	return from + " - " + format(end)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename derives the deterministic download name from the résumé
// title (whitespace collapsed to underscores) and the given date.
func Filename(title string, now time.Time) string {
	collapsed := whitespaceRun.ReplaceAllString(strings.TrimSpace(title), "_")
	return fmt.Sprintf("CV_%s_%s.pdf", collapsed, now.Format("2006-01-02"))
}
