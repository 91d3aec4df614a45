package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonathan/cv-builder/internal/apiclient"
	"github.com/jonathan/cv-builder/internal/types"
)

// CVService covers the /cvs/ resource.
type CVService struct {
	client *apiclient.Client
}

// NewCVService builds a CVService.
func NewCVService(client *apiclient.Client) *CVService {
	return &CVService{client: client}
}

// Create creates a new résumé document.
func (s *CVService) Create(ctx context.Context, req *types.CreateCVRequest) (*types.CV, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var cv types.CV
	if err := s.client.Do(ctx, http.MethodPost, "/cvs/", req, &cv); err != nil {
		return nil, err
	}
	return &cv, nil
}

// List returns all résumés owned by the current user.
func (s *CVService) List(ctx context.Context) ([]types.CV, error) {
	var cvs []types.CV
	if err := s.client.Do(ctx, http.MethodGet, "/cvs/", nil, &cvs); err != nil {
		return nil, err
	}
	return cvs, nil
}

// GetByID fetches one résumé with its expanded sections.
func (s *CVService) GetByID(ctx context.Context, id int) (*types.CV, error) {
	var cv types.CV
	if err := s.client.Do(ctx, http.MethodGet, cvPath(id), nil, &cv); err != nil {
		return nil, err
	}
	return &cv, nil
}

// Update patches title/summary on an existing résumé.
func (s *CVService) Update(ctx context.Context, id int, req *types.UpdateCVRequest) (*types.CV, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var cv types.CV
	if err := s.client.Do(ctx, http.MethodPatch, cvPath(id), req, &cv); err != nil {
		return nil, err
	}
	return &cv, nil
}

func cvPath(id int) string {
	return fmt.Sprintf("/cvs/%d/", id)
}
