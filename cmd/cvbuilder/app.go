package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cv-builder/internal/apiclient"
	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/services"
	"github.com/jonathan/cv-builder/internal/session"
	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/types"
)

// app is the wired application, built once in PersistentPreRunE.
var app *App

// App owns every injectable piece of state: configuration, the local
// store, the HTTP client and the domain services. Commands receive it
// instead of reaching for globals of their own.
type App struct {
	Config  config.Config
	Store   *store.Store
	Tokens  *store.TokenStore
	Client  *apiclient.Client
	Session *session.Store
	Printer *observability.Printer

	Auth        *services.AuthService
	CVs         *services.CVService
	Contacts    *services.ContactService
	Skills      *services.SkillService
	Experiences *services.ExperienceService
	Educations  *services.EducationService
}

// newApp layers configuration (file < env < flags), opens the local
// store and wires the client and services.
func newApp(configPath string, verbose bool) (*App, error) {
	cfg := config.FromEnv()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	dataDir, err := config.DefaultDataDir()
	if err != nil {
		return nil, err
	}
	cfg = cfg.MergeWithDefaults(config.Config{
		APIBaseURL: config.DefaultAPIBaseURL,
		AppBaseURL: config.DefaultAppBaseURL,
		DataDir:    dataDir,
	})
	cfg.Verbose = verbose
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	kv, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	tokens := store.NewTokenStore(kv)
	sess := session.New(kv)
	client := apiclient.New(cfg.APIBaseURL, tokens, &apiclient.Options{
		OnSessionExpired: func() {
			sess.Logout()
			fmt.Fprintln(os.Stderr, "Session expired. Please sign in again with 'cvbuilder login'.")
		},
	})

	a := &App{
		Config:      cfg,
		Store:       kv,
		Tokens:      tokens,
		Client:      client,
		Session:     sess,
		Printer:     observability.NewPrinter(os.Stdout),
		Auth:        services.NewAuthService(client, tokens),
		CVs:         services.NewCVService(client),
		Contacts:    services.NewContactService(client),
		Skills:      services.NewSkillService(client),
		Experiences: services.NewExperienceService(client),
		Educations:  services.NewEducationService(client),
	}
	return a, nil
}

// Close releases the local store.
func (a *App) Close() {
	_ = a.Store.Close()
}

// RequireUser resolves the session and returns the authenticated user,
// or an error telling the user to sign in.
func (a *App) RequireUser(ctx context.Context) (*types.User, error) {
	if err := a.Session.Init(ctx, a.Auth, a.Tokens); err != nil {
		return nil, fmt.Errorf("not signed in: %w", err)
	}
	if a.Session.Status() != session.StatusAuthenticated {
		return nil, fmt.Errorf("not signed in; run 'cvbuilder login' or 'cvbuilder register' first")
	}
	return a.Session.User(), nil
}

// RequireCurrentCV returns the résumé being edited, or an error pointing
// at onboarding when none is selected.
func (a *App) RequireCurrentCV() (*types.CV, error) {
	cv := a.Session.CurrentCV()
	if cv == nil {
		return nil, fmt.Errorf("no résumé selected; run 'cvbuilder onboard' or 'cvbuilder cv use <id>'")
	}
	return cv, nil
}

// RefreshCurrentCV re-fetches the current résumé so the session holds
// the authoritative server state after a mutation.
func (a *App) RefreshCurrentCV(ctx context.Context) (*types.CV, error) {
	current, err := a.RequireCurrentCV()
	if err != nil {
		return nil, err
	}
	cv, err := a.CVs.GetByID(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload résumé %d: %w", current.ID, err)
	}
	a.Session.SetCurrentCV(cv)
	return cv, nil
}
