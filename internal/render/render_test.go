package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/doctree"
	"github.com/jonathan/cv-builder/internal/types"
)

func fullCV() *types.CV {
	return &types.CV{
		ID:      1,
		Title:   "Développeur Full-Stack",
		Summary: "Dix ans d'expérience web.",
		Contact: &types.Contact{
			Email:       "marie.dupont@example.com",
			PhoneNumber: "+33612345678",
			City:        "Lyon",
			Country:     "France",
			LinkedinURL: "https://linkedin.com/in/marie",
		},
		Skills: []types.Skill{
			{Name: "Go", Level: 8},
			{Name: "PostgreSQL", Level: 5},
			{Name: "Docker", Level: 5},
		},
		Experiences: []types.Experience{
			{
				Title:     "Ingénieure Logiciel",
				Company:   "TechCorp",
				Location:  "Lyon",
				StartDate: "2022-03",
				IsCurrent: true,
			},
			{
				Title:     "Développeuse Backend",
				Company:   "WebAgence",
				StartDate: "2019-01",
				EndDate:   "2022-02",
			},
		},
		Educations: []types.Education{
			{
				Degree:      "Master en Informatique",
				Institution: "Université Lyon 1",
				StartDate:   "2016-09",
				EndDate:     "2018-06",
			},
		},
	}
}

func sectionTitles(doc *doctree.Document) []string {
	titles := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		titles = append(titles, s.Title)
	}
	return titles
}

func TestRenderModern_SectionOrderAndStyles(t *testing.T) {
	doc, err := Render(fullCV(), TemplateModern)
	require.NoError(t, err)

	assert.Equal(t, []string{"Compétences", "Expérience Professionnelle", "Formation"}, sectionTitles(doc))
	assert.Equal(t, doctree.StyleTags, doc.Sections[0].Style)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker"}, doc.Sections[0].Tags)
}

func TestRenderModern_HeaderFromContactEmail(t *testing.T) {
	doc, err := Render(fullCV(), TemplateModern)
	require.NoError(t, err)

	assert.Equal(t, "marie.dupont", doc.Header.Name)
	assert.Equal(t, "Développeur Full-Stack", doc.Header.Title)
	assert.Equal(t, []string{"marie.dupont@example.com", "+33612345678", "Lyon, France", "https://linkedin.com/in/marie"}, doc.ContactSegments)
}

func TestRenderModern_PlaceholderNameWithoutContact(t *testing.T) {
	cv := fullCV()
	cv.Contact = nil

	doc, err := Render(cv, TemplateModern)
	require.NoError(t, err)

	assert.Equal(t, "Nom", doc.Header.Name)
	assert.Empty(t, doc.ContactSegments)
}

func TestRenderModern_DatesAndCurrentSentinel(t *testing.T) {
	doc, err := Render(fullCV(), TemplateModern)
	require.NoError(t, err)

	exp := doc.Sections[1]
	require.Len(t, exp.Items, 2)
	assert.Equal(t, "mars 2022 - Présent", exp.Items[0].DateRange)
	assert.Equal(t, "janvier 2019 - février 2022", exp.Items[1].DateRange)

	edu := doc.Sections[2]
	assert.Equal(t, "septembre 2016 - juin 2018", edu.Items[0].DateRange)
}

func TestRenderModern_CurrentOverridesStoredEndDate(t *testing.T) {
	cv := fullCV()
	cv.Experiences[0].EndDate = "2024-01"

	doc, err := Render(cv, TemplateModern)
	require.NoError(t, err)
	assert.Equal(t, "mars 2022 - Présent", doc.Sections[1].Items[0].DateRange)
}

func TestRenderClassic_SectionOrderAndSkillLine(t *testing.T) {
	doc, err := Render(fullCV(), TemplateClassic)
	require.NoError(t, err)

	assert.Equal(t, []string{"Expérience Professionnelle", "Formation", "Compétences"}, sectionTitles(doc))

	skills := doc.Sections[2]
	assert.Equal(t, doctree.StyleLine, skills.Style)
	assert.Equal(t, "Go • PostgreSQL • Docker", skills.Line)
}

func TestRenderClassic_UppercasesHeaderName(t *testing.T) {
	doc, err := Render(fullCV(), TemplateClassic)
	require.NoError(t, err)
	assert.Equal(t, "MARIE.DUPONT", doc.Header.Name)
}

func TestRenderClassic_PlaceholderNameWithoutContact(t *testing.T) {
	cv := fullCV()
	cv.Contact = nil

	doc, err := Render(cv, TemplateClassic)
	require.NoError(t, err)
	assert.Equal(t, "NOM", doc.Header.Name)
}

func TestRenderClassic_ShortFrenchDates(t *testing.T) {
	doc, err := Render(fullCV(), TemplateClassic)
	require.NoError(t, err)

	exp := doc.Sections[0]
	assert.Equal(t, "mars 2022 - Présent", exp.Items[0].DateRange)
	assert.Equal(t, "janv. 2019 - févr. 2022", exp.Items[1].DateRange)
	assert.Equal(t, "sept. 2016 - juin 2018", doc.Sections[1].Items[0].DateRange)
}

func TestRenderMinimalist_YearsAndNowSentinel(t *testing.T) {
	doc, err := Render(fullCV(), TemplateMinimalist)
	require.NoError(t, err)

	assert.Equal(t, []string{"Experience", "Education", "Skills"}, sectionTitles(doc))
	assert.Equal(t, "2022 - Now", doc.Sections[0].Items[0].DateRange)
	assert.Equal(t, "2019 - 2022", doc.Sections[0].Items[1].DateRange)
	assert.Equal(t, "Go · PostgreSQL · Docker", doc.Sections[2].Line)
	assert.Equal(t, []string{"marie.dupont@example.com", "+33612345678", "Lyon, France"}, doc.ContactSegments)
}

func TestRender_EmptySectionsAreOmitted(t *testing.T) {
	cv := &types.CV{ID: 2, Title: "CV vide mais valide"}

	for _, template := range Templates() {
		doc, err := Render(cv, template)
		require.NoError(t, err)
		assert.Empty(t, doc.Sections, "template %s", template)
		assert.Empty(t, doc.ContactSegments)
	}
}

func TestRender_IsPure(t *testing.T) {
	cv := fullCV()
	first, err := Render(cv, TemplateModern)
	require.NoError(t, err)
	second, err := Render(cv, TemplateModern)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render(fullCV(), TemplateID("fancy"))
	assert.Error(t, err)
}

func TestParseTemplateID(t *testing.T) {
	tests := []struct {
		input   string
		want    TemplateID
		wantErr bool
	}{
		{input: "modern", want: TemplateModern},
		{input: "classic", want: TemplateClassic},
		{input: "minimalist", want: TemplateMinimalist},
		{input: "", want: TemplateModern},
		{input: "Modern", wantErr: true},
		{input: "fancy", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseTemplateID(tc.input)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got)
	}
}

func TestFilename(t *testing.T) {
	day := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		title string
		want  string
	}{
		{"Développeur Full-Stack", "CV_Développeur_Full-Stack_2026-09-01.pdf"},
		{"  Mon   CV  ", "CV_Mon_CV_2026-09-01.pdf"},
		{"Data\tEngineer", "CV_Data_Engineer_2026-09-01.pdf"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Filename(tc.title, day))
	}
}
