package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-builder/internal/onboarding"
	"github.com/jonathan/cv-builder/internal/types"
)

// terminalPrompter implements onboarding.Prompter over an interactive
// terminal session.
type terminalPrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newTerminalPrompter(in io.Reader, out io.Writer) *terminalPrompter {
	return &terminalPrompter{in: bufio.NewScanner(in), out: out}
}

// ask prints a prompt and reads one trimmed line.
func (p *terminalPrompter) ask(label string) string {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

func (p *terminalPrompter) askYesNo(label string) bool {
	answer := strings.ToLower(p.ask(label + " [y/N]"))
	return answer == "y" || answer == "yes" || answer == "o" || answer == "oui"
}

func (p *terminalPrompter) Document(ctx context.Context) (*types.CreateCVRequest, error) {
	fmt.Fprintln(p.out, "-- Document --")
	return &types.CreateCVRequest{
		Title:   p.ask("Résumé title"),
		Summary: p.ask("Professional summary (optional)"),
	}, nil
}

func (p *terminalPrompter) Contact(ctx context.Context, cvID int) (*types.CreateContactRequest, error) {
	fmt.Fprintln(p.out, "-- Contact --")
	return &types.CreateContactRequest{
		CV:           cvID,
		Email:        p.ask("Email"),
		PhoneNumber:  p.ask("Phone number"),
		City:         p.ask("City"),
		Country:      p.ask("Country (optional)"),
		LinkedinURL:  p.ask("LinkedIn URL (optional)"),
		PortfolioURL: p.ask("Portfolio URL (optional)"),
	}, nil
}

func (p *terminalPrompter) Skills(ctx context.Context, cvID int) ([]*types.CreateSkillRequest, error) {
	fmt.Fprintf(p.out, "-- Skills (at least %d) --\n", onboarding.MinSkills)
	var reqs []*types.CreateSkillRequest
	for {
		name := p.ask("Skill name (empty to finish)")
		if name == "" {
			return reqs, nil
		}
		level, err := types.ParseSkillLevel(p.ask("Level (beginner/intermediate/advanced/expert, empty for default)"))
		if err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			continue
		}
		reqs = append(reqs, &types.CreateSkillRequest{CV: cvID, Name: name, Level: level})
	}
}

func (p *terminalPrompter) Experiences(ctx context.Context, cvID int) ([]*types.CreateExperienceRequest, error) {
	fmt.Fprintln(p.out, "-- Experience --")
	var reqs []*types.CreateExperienceRequest
	for {
		title := p.ask("Job title (empty to finish)")
		if title == "" {
			return reqs, nil
		}
		req := &types.CreateExperienceRequest{
			CV:          cvID,
			Title:       title,
			Company:     p.ask("Company"),
			Location:    p.ask("Location (optional)"),
			StartDate:   p.ask("Start date (YYYY-MM)"),
			IsCurrent:   p.askYesNo("Current position?"),
			Description: p.ask("Description (optional)"),
			Order:       len(reqs),
		}
		if !req.IsCurrent {
			req.EndDate = p.ask("End date (YYYY-MM)")
		}
		reqs = append(reqs, req)
	}
}

func (p *terminalPrompter) Educations(ctx context.Context, cvID int) ([]*types.CreateEducationRequest, error) {
	fmt.Fprintln(p.out, "-- Education --")
	var reqs []*types.CreateEducationRequest
	for {
		degree := p.ask("Degree (empty to finish)")
		if degree == "" {
			return reqs, nil
		}
		req := &types.CreateEducationRequest{
			CV:          cvID,
			Degree:      degree,
			Institution: p.ask("Institution"),
			Location:    p.ask("Location (optional)"),
			StartDate:   p.ask("Start date (YYYY-MM)"),
			IsCurrent:   p.askYesNo("Still enrolled?"),
			Description: p.ask("Description (optional)"),
			Order:       len(reqs),
		}
		if !req.IsCurrent {
			req.EndDate = p.ask("End date (YYYY-MM)")
		}
		reqs = append(reqs, req)
	}
}
