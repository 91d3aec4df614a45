package render

import (
	"strings"

	"github.com/jonathan/cv-builder/internal/doctree"
	"github.com/jonathan/cv-builder/internal/types"
)

// renderMinimalist builds the minimalist layout: bare years, "Now" for
// running entries, skills as a " · "-joined line and a stripped-down
// contact block without profile links.
func renderMinimalist(cv *types.CV) *doctree.Document {
	doc := &doctree.Document{
		Template: string(TemplateMinimalist),
		Header: doctree.Header{
			Name:    displayName(cv),
			Title:   cv.Title,
			Summary: cv.Summary,
		},
		ContactSegments: minimalistContact(cv.Contact),
	}

	if len(cv.Experiences) > 0 {
		items := make([]doctree.Item, 0, len(cv.Experiences))
		for _, exp := range cv.Experiences {
			items = append(items, doctree.Item{
				Title:       exp.Title,
				Subtitle:    exp.Company,
				DateRange:   dateRange(exp.StartDate, exp.EndDate, exp.IsCurrent, "Now", formatYear),
				Description: exp.Description,
			})
		}
		doc.Sections = append(doc.Sections, doctree.Section{
			Title: "Experience",
			Style: doctree.StyleItems,
			Items: items,
		})
	}

	if len(cv.Educations) > 0 {
		items := make([]doctree.Item, 0, len(cv.Educations))
		for _, edu := range cv.Educations {
			items = append(items, doctree.Item{
				Title:       edu.Degree,
				Subtitle:    edu.Institution,
				DateRange:   dateRange(edu.StartDate, edu.EndDate, edu.IsCurrent, "Now", formatYear),
				Description: edu.Description,
			})
		}
		doc.Sections = append(doc.Sections, doctree.Section{
			Title: "Education",
			Style: doctree.StyleItems,
			Items: items,
		})
	}

	if len(cv.Skills) > 0 {
		names := make([]string, 0, len(cv.Skills))
		for _, s := range cv.Skills {
			names = append(names, s.Name)
		}
		doc.Sections = append(doc.Sections, doctree.Section{
			Title: "Skills",
			Style: doctree.StyleLine,
			Line:  strings.Join(names, " · "),
		})
	}

	return doc
}

func minimalistContact(contact *types.Contact) []string {
	if contact == nil {
		return nil
	}
	return []string{contact.Email, contact.PhoneNumber, cityLine(contact)}
}
