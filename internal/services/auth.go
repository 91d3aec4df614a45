// Package services provides thin request builders per API resource.
// Services shape payloads and delegate all transport concerns to the
// apiclient; they carry no business logic beyond wire mapping and the
// token-persistence side effects of the authentication flows.
package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonathan/cv-builder/internal/apiclient"
	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/types"
)

// AuthService handles registration, login, social login, logout and the
// current-user lookup.
type AuthService struct {
	client *apiclient.Client
	tokens *store.TokenStore
}

// NewAuthService builds an AuthService.
func NewAuthService(client *apiclient.Client, tokens *store.TokenStore) *AuthService {
	return &AuthService{client: client, tokens: tokens}
}

// Register creates an account. On success the returned token pair is
// persisted before the user object is handed back.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp types.RegisterResponse
	if err := s.client.Do(ctx, http.MethodPost, "/users/register/", req, &resp); err != nil {
		return nil, err
	}

	if resp.Access != "" && resp.Refresh != "" {
		if err := s.tokens.SetPair(resp.Access, resp.Refresh); err != nil {
			return nil, fmt.Errorf("failed to persist tokens: %w", err)
		}
	}

	user := resp.User
	return &user, nil
}

// Login exchanges credentials for a token pair and persists it.
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthTokens, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var tokens types.AuthTokens
	if err := s.client.Do(ctx, http.MethodPost, "/auth/login/", req, &tokens); err != nil {
		return nil, err
	}

	if err := s.tokens.SetPair(tokens.Access, tokens.Refresh); err != nil {
		return nil, fmt.Errorf("failed to persist tokens: %w", err)
	}
	return &tokens, nil
}

// GoogleLogin exchanges a Google ID token for a session. The
// authorization-code variant of this flow is intentionally not supported.
func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (*types.User, error) {
	req := &types.GoogleLoginRequest{Token: idToken}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp types.GoogleLoginResponse
	if err := s.client.Do(ctx, http.MethodPost, "/users/google-auth/", req, &resp); err != nil {
		return nil, err
	}

	if resp.Access != "" && resp.Refresh != "" {
		if err := s.tokens.SetPair(resp.Access, resp.Refresh); err != nil {
			return nil, fmt.Errorf("failed to persist tokens: %w", err)
		}
	}

	user := resp.User
	return &user, nil
}

// CurrentUser fetches the authenticated account, validating the stored
// access token as a side effect.
func (s *AuthService) CurrentUser(ctx context.Context) (*types.User, error) {
	var user types.User
	if err := s.client.Do(ctx, http.MethodGet, "/users/me/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout revokes the refresh token server-side when possible and always
// clears the local token pair. A failed revocation is reported to the
// caller for logging but never blocks local clearance.
func (s *AuthService) Logout(ctx context.Context) error {
	var revokeErr error
	if refresh := s.tokens.RefreshToken(); refresh != "" {
		revokeErr = s.client.Do(ctx, http.MethodPost, "/users/logout/", types.LogoutRequest{Refresh: refresh}, nil)
	}

	if err := s.tokens.Clear(); err != nil {
		return fmt.Errorf("failed to clear local tokens: %w", err)
	}
	return revokeErr
}
