// Package session holds the client-side mutable state: the current
// authenticated user, the résumé being edited and the initial loading
// flag. It is an explicit object owned by the application root and
// passed to commands, never an ambient global. The {user, currentCV}
// snapshot persists across runs in the local store; tokens live
// separately in the token store.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/types"
)

// Status is the authentication state machine. Valid transitions:
// Unknown -> Authenticated (persisted token validates),
// Unknown -> Anonymous (no token, or validation fails),
// Authenticated -> Anonymous (logout or refresh failure).
type Status int

// Authentication states.
const (
	StatusUnknown Status = iota
	StatusAuthenticated
	StatusAnonymous
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// snapshot is the persisted {user, currentCV} pair.
type snapshot struct {
	User      *types.User `json:"user"`
	CurrentCV *types.CV   `json:"current_cv"`
}

// Listener is notified synchronously after every state change.
type Listener func(*Store)

// userFetcher validates a persisted token by fetching the current user.
type userFetcher interface {
	CurrentUser(ctx context.Context) (*types.User, error)
}

// tokenHolder is the subset of the token store Init needs.
type tokenHolder interface {
	AccessToken() string
	Clear() error
}

// Store is the state holder.
type Store struct {
	mu        sync.Mutex
	kv        store.KV
	user      *types.User
	currentCV *types.CV
	loading   bool
	listeners []Listener
}

// New creates a Store in the initial state (no user, loading). Any
// previously persisted snapshot is restored immediately so commands can
// read the current CV reference before Init resolves authentication.
func New(kv store.KV) *Store {
	s := &Store{kv: kv, loading: true}
	s.restore()
	return s
}

// Init resolves the Unknown state: a persisted access token is validated
// by fetching the current user; on failure both tokens are purged. After
// Init the store is in exactly one of the two terminal states.
func (s *Store) Init(ctx context.Context, fetcher userFetcher, tokens tokenHolder) error {
	if tokens.AccessToken() == "" {
		s.SetUser(nil)
		return nil
	}

	user, err := fetcher.CurrentUser(ctx)
	if err != nil {
		_ = tokens.Clear()
		s.SetUser(nil)
		return fmt.Errorf("failed to validate stored session: %w", err)
	}

	s.SetUser(user)
	return nil
}

// Status returns the current authentication state.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return StatusUnknown
	}
	if s.user != nil {
		return StatusAuthenticated
	}
	return StatusAnonymous
}

// User returns the current user, nil when anonymous.
func (s *Store) User() *types.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// CurrentCV returns the résumé being edited, nil when none is selected.
func (s *Store) CurrentCV() *types.CV {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentCV
}

// SetUser stores the user, resolves the loading flag and notifies
// listeners. Passing nil transitions to Anonymous.
func (s *Store) SetUser(user *types.User) {
	s.mu.Lock()
	s.user = user
	s.loading = false
	s.mu.Unlock()
	s.persist()
	s.notify()
}

// SetCurrentCV replaces the current résumé reference.
func (s *Store) SetCurrentCV(cv *types.CV) {
	s.mu.Lock()
	s.currentCV = cv
	s.mu.Unlock()
	s.persist()
	s.notify()
}

// Logout clears user and current CV and lands in Anonymous.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.currentCV = nil
	s.loading = false
	s.mu.Unlock()
	s.persist()
	s.notify()
}

// Subscribe registers a listener invoked synchronously on every change.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, l := range listeners {
		l(s)
	}
}

// persist writes the {user, currentCV} snapshot under its fixed key.
func (s *Store) persist() {
	s.mu.Lock()
	snap := snapshot{User: s.user, CurrentCV: s.currentCV}
	s.mu.Unlock()

	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	_ = s.kv.Set(store.KeyAuthSnapshot, string(data))
}

// restore loads a previously persisted snapshot. A missing or corrupt
// snapshot simply leaves the store empty.
func (s *Store) restore() {
	raw, err := s.kv.Get(store.KeyAuthSnapshot)
	if err != nil {
		return
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return
	}

	s.mu.Lock()
	s.user = snap.User
	s.currentCV = snap.CurrentCV
	s.mu.Unlock()
}
