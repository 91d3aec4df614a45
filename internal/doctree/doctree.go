// Package doctree defines the intermediate document representation the
// résumé templates render into. The tree is pure data: templates can be
// tested against it without any PDF engine, and a separate serialization
// stage turns it into bytes.
package doctree

// SectionStyle selects how a serializer lays out a section's content.
type SectionStyle int

// Section styles.
const (
	// StyleItems renders entries with title, subtitle and date range.
	StyleItems SectionStyle = iota
	// StyleTags renders short labels as inline chips.
	StyleTags
	// StyleLine renders a single pre-joined line of text.
	StyleLine
)

// Document is one fully laid-out résumé.
type Document struct {
	// Template is the identifier of the template that produced the tree.
	Template string
	Header   Header
	// ContactSegments are the contact-line fragments, in display order.
	// An empty slice means the contact block is absent and must not be
	// rendered at all.
	ContactSegments []string
	Sections        []Section
}

// Header is the identity block at the top of the document.
type Header struct {
	Name    string
	Title   string
	Summary string
}

// Section is one titled block of content. Exactly one of Tags, Line or
// Items is populated, matching Style.
type Section struct {
	Title string
	Style SectionStyle
	Tags  []string
	Line  string
	Items []Item
}

// Item is one experience or education entry.
type Item struct {
	Title       string
	Subtitle    string
	DateRange   string
	Description string
}
