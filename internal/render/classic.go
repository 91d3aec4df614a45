package render

import (
	"strings"

	"github.com/jonathan/cv-builder/internal/doctree"
	"github.com/jonathan/cv-builder/internal/types"
)

// renderClassic builds the classic layout: experience, education, then
// skills as a single " • "-joined line, with abbreviated French dates.
// The header name is uppercased ("NOM" when no contact exists).
func renderClassic(cv *types.CV) *doctree.Document {
	doc := &doctree.Document{
		Template: string(TemplateClassic),
		Header: doctree.Header{
			Name:    strings.ToUpper(displayName(cv)),
			Title:   cv.Title,
			Summary: cv.Summary,
		},
		ContactSegments: classicContact(cv.Contact),
	}

	if len(cv.Experiences) > 0 {
		items := make([]doctree.Item, 0, len(cv.Experiences))
		for _, exp := range cv.Experiences {
			items = append(items, doctree.Item{
				Title:       exp.Title,
				Subtitle:    companyLine(exp.Company, exp.Location),
				DateRange:   dateRange(exp.StartDate, exp.EndDate, exp.IsCurrent, "Présent", formatShortFR),
				Description: exp.Description,
			})
		}
		doc.Sections = append(doc.Sections, doctree.Section{
			Title: "Expérience Professionnelle",
			Style: doctree.StyleItems,
			Items: items,
		})
	}

	if len(cv.Educations) > 0 {
		items := make([]doctree.Item, 0, len(cv.Educations))
		for _, edu := range cv.Educations {
			items = append(items, doctree.Item{
				Title:       edu.Degree,
				Subtitle:    companyLine(edu.Institution, edu.Location),
				DateRange:   dateRange(edu.StartDate, edu.EndDate, edu.IsCurrent, "En cours", formatShortFR),
				Description: edu.Description,
			})
		}
		doc.Sections = append(doc.Sections, doctree.Section{
			Title: "Formation",
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
			Title: "Compétences",
			Style: doctree.StyleLine,
			Line:  strings.Join(names, " • "),
		})
	}

	return doc
}

func classicContact(contact *types.Contact) []string {
	if contact == nil {
		return nil
	}
	segments := []string{contact.Email, contact.PhoneNumber, cityLine(contact)}
	if contact.LinkedinURL != "" {
		segments = append(segments, contact.LinkedinURL)
	}
	if contact.PortfolioURL != "" {
		segments = append(segments, contact.PortfolioURL)
	}
	return segments
}
