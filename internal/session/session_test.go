package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/types"
)

type fakeFetcher struct {
	user *types.User
	err  error
}

func (f *fakeFetcher) CurrentUser(ctx context.Context) (*types.User, error) {
	return f.user, f.err
}

func TestStore_InitialStateIsUnknown(t *testing.T) {
	s := New(store.NewMemory())
	assert.Equal(t, StatusUnknown, s.Status())
}

func TestStore_Init_NoToken_Anonymous(t *testing.T) {
	kv := store.NewMemory()
	tokens := store.NewTokenStore(kv)
	s := New(kv)

	require.NoError(t, s.Init(context.Background(), &fakeFetcher{}, tokens))
	assert.Equal(t, StatusAnonymous, s.Status())
	assert.Nil(t, s.User())
}

func TestStore_Init_ValidToken_Authenticated(t *testing.T) {
	kv := store.NewMemory()
	tokens := store.NewTokenStore(kv)
	require.NoError(t, tokens.SetPair("acc", "ref"))
	s := New(kv)

	user := &types.User{ID: 1, Email: "a@b.com"}
	require.NoError(t, s.Init(context.Background(), &fakeFetcher{user: user}, tokens))

	assert.Equal(t, StatusAuthenticated, s.Status())
	assert.Equal(t, "a@b.com", s.User().Email)
}

func TestStore_Init_ValidationFails_PurgesTokens(t *testing.T) {
	kv := store.NewMemory()
	tokens := store.NewTokenStore(kv)
	require.NoError(t, tokens.SetPair("stale", "ref"))
	s := New(kv)

	err := s.Init(context.Background(), &fakeFetcher{err: errors.New("401")}, tokens)
	assert.Error(t, err)
	assert.Equal(t, StatusAnonymous, s.Status())
	assert.Empty(t, tokens.AccessToken())
	assert.Empty(t, tokens.RefreshToken())
}

func TestStore_SnapshotPersistsAcrossInstances(t *testing.T) {
	kv := store.NewMemory()
	s := New(kv)
	s.SetUser(&types.User{ID: 1, Email: "a@b.com"})
	s.SetCurrentCV(&types.CV{ID: 42, Title: "Mon CV"})

	// A fresh store over the same KV sees the persisted snapshot.
	reloaded := New(kv)
	require.NotNil(t, reloaded.CurrentCV())
	assert.Equal(t, 42, reloaded.CurrentCV().ID)
	// But authentication still needs to be resolved.
	assert.Equal(t, StatusUnknown, reloaded.Status())
}

func TestStore_Logout_ClearsEverything(t *testing.T) {
	kv := store.NewMemory()
	s := New(kv)
	s.SetUser(&types.User{ID: 1})
	s.SetCurrentCV(&types.CV{ID: 42})

	s.Logout()

	assert.Equal(t, StatusAnonymous, s.Status())
	assert.Nil(t, s.User())
	assert.Nil(t, s.CurrentCV())
}

func TestStore_SubscribersNotifiedSynchronously(t *testing.T) {
	s := New(store.NewMemory())

	var seen []Status
	s.Subscribe(func(s *Store) { seen = append(seen, s.Status()) })

	s.SetUser(&types.User{ID: 1})
	s.Logout()

	require.Len(t, seen, 2)
	assert.Equal(t, StatusAuthenticated, seen[0])
	assert.Equal(t, StatusAnonymous, seen[1])
}
