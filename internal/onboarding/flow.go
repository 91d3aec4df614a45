// Package onboarding drives the guided five-step creation of a résumé:
// document, contact, skills, experience, education. Steps run in order;
// each one validates locally, creates through the matching service and
// only then advances. Entering any step past the document step without a
// résumé in progress redirects back to the document step.
package onboarding

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-builder/internal/session"
	"github.com/jonathan/cv-builder/internal/types"
)

// Step identifies one onboarding step.
type Step string

// The five steps, plus the terminal marker.
const (
	StepDocument   Step = "document"
	StepContact    Step = "contact"
	StepSkills     Step = "skills"
	StepExperience Step = "experience"
	StepEducation  Step = "education"
	StepDone       Step = "done"
)

// MinSkills is the minimum number of skills the skills step accepts.
const MinSkills = 3

// StepDefinition holds per-step metadata.
type StepDefinition struct {
	Name  Step
	Title string
	Next  Step
	// NeedsCV marks steps that attach entries to an existing résumé.
	NeedsCV bool
}

// Registry defines the linear step chain.
var Registry = map[Step]StepDefinition{
	StepDocument:   {Name: StepDocument, Title: "Document", Next: StepContact},
	StepContact:    {Name: StepContact, Title: "Contact", Next: StepSkills, NeedsCV: true},
	StepSkills:     {Name: StepSkills, Title: "Compétences", Next: StepExperience, NeedsCV: true},
	StepExperience: {Name: StepExperience, Title: "Expérience", Next: StepEducation, NeedsCV: true},
	StepEducation:  {Name: StepEducation, Title: "Formation", Next: StepDone, NeedsCV: true},
}

// ParseStep validates a user-supplied step name.
func ParseStep(s string) (Step, error) {
	if s == "" {
		return StepDocument, nil
	}
	if _, ok := Registry[Step(s)]; !ok {
		return "", fmt.Errorf("unknown step %q (expected document, contact, skills, experience or education)", s)
	}
	return Step(s), nil
}

// StepError reports which step failed and why.
type StepError struct {
	Step  Step
	Cause error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s failed: %v", e.Step, e.Cause)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// Prompter supplies the user's answers for each step. The CLI implements
// it over the terminal; tests implement it with canned data. A nil
// result (or empty slice, for the optional entry steps) skips the step.
type Prompter interface {
	Document(ctx context.Context) (*types.CreateCVRequest, error)
	Contact(ctx context.Context, cvID int) (*types.CreateContactRequest, error)
	Skills(ctx context.Context, cvID int) ([]*types.CreateSkillRequest, error)
	Experiences(ctx context.Context, cvID int) ([]*types.CreateExperienceRequest, error)
	Educations(ctx context.Context, cvID int) ([]*types.CreateEducationRequest, error)
}

// cvCreator is the slice of the CV service the flow needs.
type cvCreator interface {
	Create(ctx context.Context, req *types.CreateCVRequest) (*types.CV, error)
	GetByID(ctx context.Context, id int) (*types.CV, error)
}

type contactCreator interface {
	Create(ctx context.Context, req *types.CreateContactRequest) (*types.Contact, error)
}

type skillCreator interface {
	Create(ctx context.Context, req *types.CreateSkillRequest) (*types.Skill, error)
}

type experienceCreator interface {
	Create(ctx context.Context, req *types.CreateExperienceRequest) (*types.Experience, error)
}

type educationCreator interface {
	Create(ctx context.Context, req *types.CreateEducationRequest) (*types.Education, error)
}

// Services bundles the domain services the flow creates through.
type Services struct {
	CVs         cvCreator
	Contacts    contactCreator
	Skills      skillCreator
	Experiences experienceCreator
	Educations  educationCreator
}

// ProgressFunc is called when a step starts, with its definition.
type ProgressFunc func(def StepDefinition)

// Flow is the onboarding state machine.
type Flow struct {
	services   Services
	session    *session.Store
	prompter   Prompter
	onProgress ProgressFunc
}

// New creates a Flow. onProgress may be nil.
func New(services Services, sess *session.Store, prompter Prompter, onProgress ProgressFunc) *Flow {
	return &Flow{services: services, session: sess, prompter: prompter, onProgress: onProgress}
}

// Run walks the step chain from start until done. A step that fails
// stops the flow with a *StepError; already completed steps keep their
// server-side effects.
func (f *Flow) Run(ctx context.Context, start Step) error {
	step := start
	if step == "" {
		step = StepDocument
	}

	for step != StepDone {
		def, ok := Registry[step]
		if !ok {
			return fmt.Errorf("unknown step %q", step)
		}
		if def.NeedsCV && f.session.CurrentCV() == nil {
			step = StepDocument
			continue
		}
		if f.onProgress != nil {
			f.onProgress(def)
		}
		if err := f.execute(ctx, step); err != nil {
			return &StepError{Step: step, Cause: err}
		}
		step = def.Next
	}

	return f.refreshCurrentCV(ctx)
}

func (f *Flow) execute(ctx context.Context, step Step) error {
	switch step {
	case StepDocument:
		return f.runDocument(ctx)
	case StepContact:
		return f.runContact(ctx)
	case StepSkills:
		return f.runSkills(ctx)
	case StepExperience:
		return f.runExperiences(ctx)
	case StepEducation:
		return f.runEducations(ctx)
	}
	return fmt.Errorf("step %q has no executor", step)
}

func (f *Flow) runDocument(ctx context.Context) error {
	req, err := f.prompter.Document(ctx)
	if err != nil {
		return err
	}
	if req == nil {
		return fmt.Errorf("a résumé document is required to continue")
	}
	cv, err := f.services.CVs.Create(ctx, req)
	if err != nil {
		return err
	}
	f.session.SetCurrentCV(cv)
	return nil
}

func (f *Flow) runContact(ctx context.Context) error {
	cvID := f.session.CurrentCV().ID
	req, err := f.prompter.Contact(ctx, cvID)
	if err != nil {
		return err
	}
	if req == nil {
		return fmt.Errorf("contact details are required to continue")
	}
	req.CV = cvID
	_, err = f.services.Contacts.Create(ctx, req)
	return err
}

func (f *Flow) runSkills(ctx context.Context) error {
	cvID := f.session.CurrentCV().ID
	reqs, err := f.prompter.Skills(ctx, cvID)
	if err != nil {
		return err
	}
	if len(reqs) < MinSkills {
		return fmt.Errorf("at least %d skills are required, got %d", MinSkills, len(reqs))
	}
	for _, req := range reqs {
		req.CV = cvID
		if _, err := f.services.Skills.Create(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func (f *Flow) runExperiences(ctx context.Context) error {
	cvID := f.session.CurrentCV().ID
	reqs, err := f.prompter.Experiences(ctx, cvID)
	if err != nil {
		return err
	}
	for _, req := range reqs {
		req.CV = cvID
		if req.IsCurrent {
			req.EndDate = ""
		}
		if _, err := f.services.Experiences.Create(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func (f *Flow) runEducations(ctx context.Context) error {
	cvID := f.session.CurrentCV().ID
	reqs, err := f.prompter.Educations(ctx, cvID)
	if err != nil {
		return err
	}
	for _, req := range reqs {
		req.CV = cvID
		if req.IsCurrent {
			req.EndDate = ""
		}
		if _, err := f.services.Educations.Create(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

// refreshCurrentCV re-fetches the finished résumé so the session holds
// the fully expanded object.
func (f *Flow) refreshCurrentCV(ctx context.Context) error {
	current := f.session.CurrentCV()
	if current == nil {
		return nil
	}
	cv, err := f.services.CVs.GetByID(ctx, current.ID)
	if err != nil {
		return fmt.Errorf("failed to reload résumé after onboarding: %w", err)
	}
	f.session.SetCurrentCV(cv)
	return nil
}
