package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/apiclient"
	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/types"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

// newRecordingServer captures every request and answers each path with
// the configured JSON response.
func newRecordingServer(t *testing.T, responses map[string]any, requests *[]recordedRequest) *httptest.Server {
	t.Helper()
	var count atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count.Add(1)
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path}
		_ = json.NewDecoder(r.Body).Decode(&rec.Body)
		*requests = append(*requests, rec)

		resp, ok := responses[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "not found"})
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newServices(t *testing.T, srvURL string) (*apiclient.Client, *store.TokenStore) {
	t.Helper()
	tokens := store.NewTokenStore(store.NewMemory())
	return apiclient.New(srvURL, tokens, nil), tokens
}

func TestAuthService_Login_PersistsTokens(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(t, map[string]any{
		"/auth/login/": map[string]string{"access": "acc-token", "refresh": "ref-token"},
	}, &requests)

	client, tokens := newServices(t, srv.URL)
	auth := NewAuthService(client, tokens)

	pair, err := auth.Login(context.Background(), &types.LoginRequest{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, "acc-token", pair.Access)
	assert.Equal(t, "acc-token", tokens.AccessToken())
	assert.Equal(t, "ref-token", tokens.RefreshToken())
	require.Len(t, requests, 1)
	assert.Equal(t, "a@b.com", requests[0].Body["email"])
}

func TestAuthService_Login_InvalidCredentialsShape_NoNetwork(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(t, nil, &requests)

	client, tokens := newServices(t, srv.URL)
	auth := NewAuthService(client, tokens)

	_, err := auth.Login(context.Background(), &types.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)
	assert.Empty(t, requests, "validation failures must not reach the network")
}

func TestAuthService_Register_MismatchedConfirm_NoNetwork(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(t, nil, &requests)

	client, tokens := newServices(t, srv.URL)
	auth := NewAuthService(client, tokens)

	_, err := auth.Register(context.Background(), &types.RegisterRequest{
		Email:           "a@b.com",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Password:        "secret123",
		PasswordConfirm: "different",
	})
	assert.Error(t, err)
	assert.Empty(t, requests)
	assert.Empty(t, tokens.AccessToken())
}

func TestAuthService_Register_PersistsTokensAndReturnsUser(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(t, map[string]any{
		"/users/register/": map[string]any{
			"id": 7, "email": "a@b.com", "first_name": "Ada", "last_name": "Lovelace",
			"is_premium_subscriber": false,
			"access":                "acc", "refresh": "ref",
		},
	}, &requests)

	client, tokens := newServices(t, srv.URL)
	auth := NewAuthService(client, tokens)

	user, err := auth.Register(context.Background(), &types.RegisterRequest{
		Email:           "a@b.com",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Password:        "secret123",
		PasswordConfirm: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "acc", tokens.AccessToken())
	assert.Equal(t, "ref", tokens.RefreshToken())
}

func TestAuthService_GoogleLogin(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(t, map[string]any{
		"/users/google-auth/": map[string]any{
			"id": 3, "email": "g@b.com", "first_name": "G", "last_name": "User",
			"access": "g-acc", "refresh": "g-ref",
		},
	}, &requests)

	client, tokens := newServices(t, srv.URL)
	auth := NewAuthService(client, tokens)

	user, err := auth.GoogleLogin(context.Background(), "google-id-token")
	require.NoError(t, err)

	assert.Equal(t, "g@b.com", user.Email)
	assert.Equal(t, "g-acc", tokens.AccessToken())
	require.Len(t, requests, 1)
	assert.Equal(t, "google-id-token", requests[0].Body["token"])
}

func TestAuthService_GoogleLogin_MissingCredential(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(t, nil, &requests)

	client, tokens := newServices(t, srv.URL)
	auth := NewAuthService(client, tokens)

	_, err := auth.GoogleLogin(context.Background(), "")
	assert.Error(t, err)
	assert.Empty(t, requests, "aborted without side effects")
}

func TestAuthService_Logout_ClearsTokensEvenOnRevokeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Token de rafraîchissement invalide."})
	}))
	defer srv.Close()

	client, tokens := newServices(t, srv.URL)
	require.NoError(t, tokens.SetPair("acc", "ref"))
	auth := NewAuthService(client, tokens)

	err := auth.Logout(context.Background())
	assert.Error(t, err, "revocation failure is reported")
	assert.Empty(t, tokens.AccessToken(), "local clearance happens regardless")
	assert.Empty(t, tokens.RefreshToken())
}

func TestSkillService_Create_MapsSymbolicLevel(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(t, map[string]any{
		"/skills/": map[string]any{"id": 11, "cv": 1, "name": "Go", "level": 8},
	}, &requests)

	client, _ := newServices(t, srv.URL)
	skills := NewSkillService(client)

	skill, err := skills.Create(context.Background(), &types.CreateSkillRequest{
		CV:    1,
		Name:  "Go",
		Level: types.LevelAdvanced,
	})
	require.NoError(t, err)
	assert.Equal(t, 11, skill.ID)

	require.Len(t, requests, 1)
	assert.EqualValues(t, 8, requests[0].Body["level"])
	assert.Equal(t, "TECH", requests[0].Body["category"])
}

func TestSkillService_Create_DefaultLevel(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(t, map[string]any{
		"/skills/": map[string]any{"id": 12},
	}, &requests)

	client, _ := newServices(t, srv.URL)
	skills := NewSkillService(client)

	_, err := skills.Create(context.Background(), &types.CreateSkillRequest{CV: 1, Name: "Teamwork"})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.EqualValues(t, types.DefaultSkillScore, requests[0].Body["level"])
}

func TestSkillService_Update_MapsSymbolicLevel(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(t, map[string]any{
		"/skills/11/": map[string]any{"id": 11, "cv": 1, "name": "Go", "level": 10},
	}, &requests)

	client, _ := newServices(t, srv.URL)
	skills := NewSkillService(client)

	skill, err := skills.Update(context.Background(), 11, &types.CreateSkillRequest{
		CV:    1,
		Name:  "Go",
		Level: types.LevelExpert,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, skill.Level)

	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPatch, requests[0].Method)
	assert.EqualValues(t, 10, requests[0].Body["level"])
	assert.Equal(t, "TECH", requests[0].Body["category"])
}

func TestExperienceService_Update_CurrentDropsEndDate(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(t, map[string]any{
		"/experiences/5/": map[string]any{"id": 5, "cv": 1, "title": "Engineer", "is_current": true},
	}, &requests)

	client, _ := newServices(t, srv.URL)
	experiences := NewExperienceService(client)

	_, err := experiences.Update(context.Background(), 5, &types.CreateExperienceRequest{
		CV:        1,
		Title:     "Engineer",
		Company:   "TechCorp",
		StartDate: "2022-03",
		EndDate:   "2023-01",
		IsCurrent: true,
	})
	require.NoError(t, err)

	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPatch, requests[0].Method)
	_, hasEnd := requests[0].Body["end_date"]
	assert.False(t, hasEnd, "a current position never sends an end date")
}

func TestEducationService_Update(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(t, map[string]any{
		"/educations/9/": map[string]any{"id": 9, "cv": 1, "degree": "Doctorat"},
	}, &requests)

	client, _ := newServices(t, srv.URL)
	educations := NewEducationService(client)

	edu, err := educations.Update(context.Background(), 9, &types.CreateEducationRequest{
		CV:          1,
		Degree:      "Doctorat",
		Institution: "Université Paris-Saclay",
		StartDate:   "2020-09",
		EndDate:     "2024-06",
	})
	require.NoError(t, err)
	assert.Equal(t, "Doctorat", edu.Degree)

	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPatch, requests[0].Method)
	assert.Equal(t, "2024-06", requests[0].Body["end_date"])
}

func TestExperienceService_Create_CurrentDropsEndDate(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(t, map[string]any{
		"/experiences/": map[string]any{"id": 5, "cv": 1, "title": "Engineer", "is_current": true},
	}, &requests)

	client, _ := newServices(t, srv.URL)
	experiences := NewExperienceService(client)

	_, err := experiences.Create(context.Background(), &types.CreateExperienceRequest{
		CV:        1,
		Title:     "Engineer",
		Company:   "TechCorp",
		StartDate: "2022-03",
		EndDate:   "2023-01",
		IsCurrent: true,
	})
	require.NoError(t, err)

	require.Len(t, requests, 1)
	_, hasEnd := requests[0].Body["end_date"]
	assert.False(t, hasEnd, "a current position never sends an end date")
	assert.Equal(t, true, requests[0].Body["is_current"])
}

func TestEducationService_Create(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(t, map[string]any{
		"/educations/": map[string]any{"id": 9, "cv": 1, "degree": "Master"},
	}, &requests)

	client, _ := newServices(t, srv.URL)
	educations := NewEducationService(client)

	edu, err := educations.Create(context.Background(), &types.CreateEducationRequest{
		CV:          1,
		Degree:      "Master en Informatique",
		Institution: "Université Paris-Saclay",
		StartDate:   "2018-09",
		EndDate:     "2020-06",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, edu.ID)
	assert.Equal(t, "2020-06", requests[0].Body["end_date"])
}

func TestCVService_CreateAndGet(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(t, map[string]any{
		"/cvs/":   map[string]any{"id": 1, "title": "Développeur Full-Stack"},
		"/cvs/1/": map[string]any{"id": 1, "title": "Développeur Full-Stack", "skills": []map[string]any{{"id": 2, "name": "Go"}}},
	}, &requests)

	client, _ := newServices(t, srv.URL)
	cvs := NewCVService(client)

	cv, err := cvs.Create(context.Background(), &types.CreateCVRequest{Title: "Développeur Full-Stack"})
	require.NoError(t, err)
	assert.Equal(t, 1, cv.ID)

	full, err := cvs.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, full.Skills, 1)
	assert.Equal(t, "Go", full.Skills[0].Name)
}

func TestCVService_Create_TooShortTitle_NoNetwork(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(t, nil, &requests)

	client, _ := newServices(t, srv.URL)
	cvs := NewCVService(client)

	_, err := cvs.Create(context.Background(), &types.CreateCVRequest{Title: "CV"})
	assert.Error(t, err)
	assert.Empty(t, requests)
}
