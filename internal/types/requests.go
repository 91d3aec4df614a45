package types

import "fmt"

// CreateCVRequest creates a new résumé document (onboarding step one).
type CreateCVRequest struct {
	Title   string `json:"title" validate:"required,min=3,max=100"`
	Summary string `json:"summary,omitempty" validate:"max=500"`
}

// UpdateCVRequest patches title/summary on an existing CV. Pointer fields
// distinguish "leave unchanged" from "set to empty".
type UpdateCVRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=3,max=100"`
	Summary *string `json:"summary,omitempty" validate:"omitempty,max=500"`
}

// CreateContactRequest creates the one-to-one contact block for a CV.
type CreateContactRequest struct {
	CV           int    `json:"cv" validate:"required"`
	PhoneNumber  string `json:"phone_number" validate:"required,min=10"`
	Email        string `json:"email" validate:"required,email"`
	City         string `json:"city" validate:"required,min=2"`
	Country      string `json:"country,omitempty"`
	LinkedinURL  string `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	PortfolioURL string `json:"portfolio_url,omitempty" validate:"omitempty,url"`
}

// CreateSkillRequest creates one skill. Level carries the symbolic value;
// the service maps it to the numeric score before sending.
type CreateSkillRequest struct {
	CV    int        `json:"cv" validate:"required"`
	Name  string     `json:"name" validate:"required,min=2"`
	Level SkillLevel `json:"-"`
}

// CreateExperienceRequest creates one experience entry.
type CreateExperienceRequest struct {
	CV          int    `json:"cv" validate:"required"`
	Title       string `json:"title" validate:"required,min=2"`
	Company     string `json:"company" validate:"required,min=2"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date,omitempty"`
	IsCurrent   bool   `json:"is_current"`
	Description string `json:"description,omitempty" validate:"max=1000"`
	Order       int    `json:"order"`
}

// CreateEducationRequest creates one education entry.
type CreateEducationRequest struct {
	CV          int    `json:"cv" validate:"required"`
	Degree      string `json:"degree" validate:"required,min=2"`
	Institution string `json:"institution" validate:"required,min=2"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date,omitempty"`
	IsCurrent   bool   `json:"is_current"`
	Description string `json:"description,omitempty" validate:"max=500"`
	Order       int    `json:"order"`
}

// Validate validates the CreateCVRequest using the validator.
func (r *CreateCVRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the UpdateCVRequest using the validator.
func (r *UpdateCVRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CreateContactRequest using the validator.
func (r *CreateContactRequest) Validate() error {
	return validate.Struct(r)
}

// Validate checks the name and that the symbolic level, if set, is known.
func (r *CreateSkillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !r.Level.Valid() {
		return fmt.Errorf("invalid skill level %q", r.Level)
	}
	return nil
}

// Validate validates the CreateExperienceRequest, including date sanity:
// a start date is required, and an end date may not precede it.
func (r *CreateExperienceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	return checkDateRange(r.StartDate, r.EndDate, r.IsCurrent)
}

// Validate validates the CreateEducationRequest with the same date rules
// as experiences.
func (r *CreateEducationRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	return checkDateRange(r.StartDate, r.EndDate, r.IsCurrent)
}
