// Package pdf serializes a document tree into PDF bytes. All layout
// decisions (section order, date wording, joined skill lines) were made
// upstream by the templates; this package only draws.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/cv-builder/internal/doctree"
)

// Page geometry, in millimetres.
const (
	pageMargin    = 15.0
	sectionGap    = 6.0
	itemGap       = 3.0
	bodyLineHt    = 5.0
	headerNameHt  = 10.0
	headerTitleHt = 7.0
)

// theme is the per-template visual treatment.
type theme struct {
	font      string
	accentR   int
	accentG   int
	accentB   int
	ruleUnder bool
}

var themes = map[string]theme{
	"modern":     {font: "Helvetica", accentR: 37, accentG: 99, accentB: 235, ruleUnder: true},
	"classic":    {font: "Times", accentR: 31, accentG: 41, accentB: 55, ruleUnder: true},
	"minimalist": {font: "Helvetica", accentR: 17, accentG: 17, accentB: 17, ruleUnder: false},
}

// Serializer turns document trees into PDF bytes. The creation and
// modification dates are pinned so that identical trees always produce
// identical bytes.
type Serializer struct {
	stamp time.Time
}

// NewSerializer returns a Serializer with a fixed document timestamp.
func NewSerializer() *Serializer {
	return &Serializer{stamp: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Serialize renders doc into a single-page-flow A4 PDF.
func (s *Serializer) Serialize(doc *doctree.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}
	th, ok := themes[doc.Template]
	if !ok {
		return nil, fmt.Errorf("no theme for template %q", doc.Template)
	}

	p := fpdf.New("P", "mm", "A4", "")
	p.SetCreationDate(s.stamp)
	p.SetModificationDate(s.stamp)
	p.SetTitle(doc.Header.Name+" - "+doc.Header.Title, true)
	p.SetMargins(pageMargin, pageMargin, pageMargin)
	p.SetAutoPageBreak(true, pageMargin)
	p.AddPage()

	tr := p.UnicodeTranslatorFromDescriptor("")
	width, _ := p.GetPageSize()
	usable := width - 2*pageMargin

	s.drawHeader(p, tr, th, doc, usable)
	for _, section := range doc.Sections {
		s.drawSection(p, tr, th, section, usable)
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Serializer) drawHeader(p *fpdf.Fpdf, tr func(string) string, th theme, doc *doctree.Document, usable float64) {
	p.SetFont(th.font, "B", 22)
	p.SetTextColor(th.accentR, th.accentG, th.accentB)
	p.CellFormat(usable, headerNameHt, tr(doc.Header.Name), "", 1, "L", false, 0, "")

	p.SetFont(th.font, "", 13)
	p.SetTextColor(90, 90, 90)
	p.CellFormat(usable, headerTitleHt, tr(doc.Header.Title), "", 1, "L", false, 0, "")

	if len(doc.ContactSegments) > 0 {
		p.SetFont(th.font, "", 9)
		p.SetTextColor(120, 120, 120)
		p.MultiCell(usable, bodyLineHt, tr(strings.Join(doc.ContactSegments, "  ·  ")), "", "L", false)
	}

	if doc.Header.Summary != "" {
		p.Ln(itemGap)
		p.SetFont(th.font, "", 10)
		p.SetTextColor(60, 60, 60)
		p.MultiCell(usable, bodyLineHt, tr(doc.Header.Summary), "", "L", false)
	}
}

func (s *Serializer) drawSection(p *fpdf.Fpdf, tr func(string) string, th theme, section doctree.Section, usable float64) {
	p.Ln(sectionGap)
	p.SetFont(th.font, "B", 12)
	p.SetTextColor(th.accentR, th.accentG, th.accentB)
	p.CellFormat(usable, 6, tr(strings.ToUpper(section.Title)), "", 1, "L", false, 0, "")
	if th.ruleUnder {
		x, y := p.GetXY()
		p.SetDrawColor(th.accentR, th.accentG, th.accentB)
		p.Line(x, y, x+usable, y)
		p.Ln(2)
	}

	switch section.Style {
	case doctree.StyleTags:
		p.SetFont(th.font, "", 10)
		p.SetTextColor(60, 60, 60)
		p.MultiCell(usable, bodyLineHt, tr(strings.Join(section.Tags, "    ")), "", "L", false)
	case doctree.StyleLine:
		p.SetFont(th.font, "", 10)
		p.SetTextColor(60, 60, 60)
		p.MultiCell(usable, bodyLineHt, tr(section.Line), "", "L", false)
	case doctree.StyleItems:
		for _, item := range section.Items {
			s.drawItem(p, tr, th, item, usable)
		}
	}
}

func (s *Serializer) drawItem(p *fpdf.Fpdf, tr func(string) string, th theme, item doctree.Item, usable float64) {
	p.Ln(itemGap)
	p.SetFont(th.font, "B", 11)
	p.SetTextColor(30, 30, 30)
	p.CellFormat(usable*0.65, bodyLineHt, tr(item.Title), "", 0, "L", false, 0, "")

	p.SetFont(th.font, "", 9)
	p.SetTextColor(120, 120, 120)
	p.CellFormat(usable*0.35, bodyLineHt, tr(item.DateRange), "", 1, "R", false, 0, "")

	if item.Subtitle != "" {
		p.SetFont(th.font, "I", 10)
		p.SetTextColor(90, 90, 90)
		p.CellFormat(usable, bodyLineHt, tr(item.Subtitle), "", 1, "L", false, 0, "")
	}
	if item.Description != "" {
		p.SetFont(th.font, "", 9)
		p.SetTextColor(60, 60, 60)
		p.MultiCell(usable, 4.5, tr(item.Description), "", "L", false)
	}
}
