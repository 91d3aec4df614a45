package store

import (
	"errors"
)

// TokenStore holds the access/refresh token pair in durable local storage.
// It is the only cross-cutting mutable shared state in the client: read
// before every request, written only by login, refresh and logout paths.
type TokenStore struct {
	kv KV
}

// NewTokenStore wraps a KV as a token store.
func NewTokenStore(kv KV) *TokenStore {
	return &TokenStore{kv: kv}
}

// AccessToken returns the stored access token, or "" when absent.
func (t *TokenStore) AccessToken() string {
	value, err := t.kv.Get(KeyAccessToken)
	if err != nil {
		return ""
	}
	return value
}

// RefreshToken returns the stored refresh token, or "" when absent.
func (t *TokenStore) RefreshToken() string {
	value, err := t.kv.Get(KeyRefreshToken)
	if err != nil {
		return ""
	}
	return value
}

// SetAccessToken replaces the access token in place (silent refresh).
func (t *TokenStore) SetAccessToken(token string) error {
	return t.kv.Set(KeyAccessToken, token)
}

// SetPair stores both tokens after login, registration or social login.
func (t *TokenStore) SetPair(access, refresh string) error {
	if err := t.kv.Set(KeyAccessToken, access); err != nil {
		return err
	}
	return t.kv.Set(KeyRefreshToken, refresh)
}

// Clear removes both tokens (logout or unrecoverable refresh failure).
func (t *TokenStore) Clear() error {
	err1 := t.kv.Delete(KeyAccessToken)
	err2 := t.kv.Delete(KeyRefreshToken)
	return errors.Join(err1, err2)
}
