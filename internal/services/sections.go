package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonathan/cv-builder/internal/apiclient"
	"github.com/jonathan/cv-builder/internal/types"
)

// ContactService covers the /contacts/ resource (one contact per CV).
type ContactService struct {
	client *apiclient.Client
}

// NewContactService builds a ContactService.
func NewContactService(client *apiclient.Client) *ContactService {
	return &ContactService{client: client}
}

// Create attaches the contact block to a CV.
func (s *ContactService) Create(ctx context.Context, req *types.CreateContactRequest) (*types.Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var contact types.Contact
	if err := s.client.Do(ctx, http.MethodPost, "/contacts/", req, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// Update patches an existing contact block.
func (s *ContactService) Update(ctx context.Context, id int, req *types.CreateContactRequest) (*types.Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var contact types.Contact
	if err := s.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/contacts/%d/", id), req, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// SkillService covers the /skills/ resource.
type SkillService struct {
	client *apiclient.Client
}

// NewSkillService builds a SkillService.
func NewSkillService(client *apiclient.Client) *SkillService {
	return &SkillService{client: client}
}

// skillWire is the payload actually sent: the symbolic level is mapped
// to its numeric score and the backend's default category is supplied.
type skillWire struct {
	CV       int    `json:"cv"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

// Create adds one skill to a CV.
func (s *SkillService) Create(ctx context.Context, req *types.CreateSkillRequest) (*types.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	payload := skillWire{
		CV:       req.CV,
		Name:     req.Name,
		Level:    req.Level.Score(),
		Category: types.DefaultSkillCategory,
	}
	var skill types.Skill
	if err := s.client.Do(ctx, http.MethodPost, "/skills/", payload, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// Update patches one skill.
func (s *SkillService) Update(ctx context.Context, id int, req *types.CreateSkillRequest) (*types.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	payload := skillWire{
		CV:       req.CV,
		Name:     req.Name,
		Level:    req.Level.Score(),
		Category: types.DefaultSkillCategory,
	}
	var skill types.Skill
	if err := s.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/skills/%d/", id), payload, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// Delete removes one skill.
func (s *SkillService) Delete(ctx context.Context, id int) error {
	return s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/skills/%d/", id), nil, nil)
}

// ExperienceService covers the /experiences/ resource.
type ExperienceService struct {
	client *apiclient.Client
}

// NewExperienceService builds an ExperienceService.
func NewExperienceService(client *apiclient.Client) *ExperienceService {
	return &ExperienceService{client: client}
}

// Create adds one experience entry. A current position never carries an
// end date on the wire, even if the caller left one set.
func (s *ExperienceService) Create(ctx context.Context, req *types.CreateExperienceRequest) (*types.Experience, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	payload := *req
	if payload.IsCurrent {
		payload.EndDate = ""
	}
	var exp types.Experience
	if err := s.client.Do(ctx, http.MethodPost, "/experiences/", payload, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

// Update patches one experience entry with the same end-date rule as Create.
func (s *ExperienceService) Update(ctx context.Context, id int, req *types.CreateExperienceRequest) (*types.Experience, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	payload := *req
	if payload.IsCurrent {
		payload.EndDate = ""
	}
	var exp types.Experience
	if err := s.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/experiences/%d/", id), payload, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

// Delete removes one experience entry.
func (s *ExperienceService) Delete(ctx context.Context, id int) error {
	return s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/experiences/%d/", id), nil, nil)
}

// EducationService covers the /educations/ resource.
type EducationService struct {
	client *apiclient.Client
}

// NewEducationService builds an EducationService.
func NewEducationService(client *apiclient.Client) *EducationService {
	return &EducationService{client: client}
}

// Create adds one education entry, applying the same end-date rule as
// experiences.
func (s *EducationService) Create(ctx context.Context, req *types.CreateEducationRequest) (*types.Education, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	payload := *req
	if payload.IsCurrent {
		payload.EndDate = ""
	}
	var edu types.Education
	if err := s.client.Do(ctx, http.MethodPost, "/educations/", payload, &edu); err != nil {
		return nil, err
	}
	return &edu, nil
}

// Update patches one education entry.
func (s *EducationService) Update(ctx context.Context, id int, req *types.CreateEducationRequest) (*types.Education, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	payload := *req
	if payload.IsCurrent {
		payload.EndDate = ""
	}
	var edu types.Education
	if err := s.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/educations/%d/", id), payload, &edu); err != nil {
		return nil, err
	}
	return &edu, nil
}

// Delete removes one education entry.
func (s *EducationService) Delete(ctx context.Context, id int) error {
	return s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/educations/%d/", id), nil, nil)
}
