package render

import (
	"github.com/jonathan/cv-builder/internal/doctree"
	"github.com/jonathan/cv-builder/internal/types"
)

// renderModern builds the modern layout: skills first as inline tags,
// then experience and education with long French date ranges. A running
// position reads "Présent", an ongoing degree "En cours".
func renderModern(cv *types.CV) *doctree.Document {
	doc := &doctree.Document{
		Template: string(TemplateModern),
		Header: doctree.Header{
			Name:    displayName(cv),
			Title:   cv.Title,
			Summary: cv.Summary,
		},
		ContactSegments: modernContact(cv.Contact),
	}

	if len(cv.Skills) > 0 {
		tags := make([]string, 0, len(cv.Skills))
		for _, s := range cv.Skills {
			tags = append(tags, s.Name)
		}
		doc.Sections = append(doc.Sections, doctree.Section{
			Title: "Compétences",
			Style: doctree.StyleTags,
			Tags:  tags,
		})
	}

	if len(cv.Experiences) > 0 {
		items := make([]doctree.Item, 0, len(cv.Experiences))
		for _, exp := range cv.Experiences {
			items = append(items, doctree.Item{
				Title:       exp.Title,
				Subtitle:    companyLine(exp.Company, exp.Location),
				DateRange:   dateRange(exp.StartDate, exp.EndDate, exp.IsCurrent, "Présent", formatLongFR),
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
				DateRange:   dateRange(edu.StartDate, edu.EndDate, edu.IsCurrent, "En cours", formatLongFR),
				Description: edu.Description,
			})
		}
		doc.Sections = append(doc.Sections, doctree.Section{
			Title: "Formation",
			Style: doctree.StyleItems,
			Items: items,
		})
	}

	return doc
}

func modernContact(contact *types.Contact) []string {
	if contact == nil {
		return nil
	}
	segments := []string{contact.Email, contact.PhoneNumber, cityLine(contact)}
	if contact.LinkedinURL != "" {
		segments = append(segments, contact.LinkedinURL)
	}
	return segments
}

// companyLine joins an organisation and its optional location.
func companyLine(org, location string) string {
	if location != "" {
		return org + ", " + location
	}
	return org
}
