// Package session owns the authenticated-user lifecycle for one browser
// session: the stored bearer token and its resolution into a user. It is
// constructed once in main and handed to whoever needs it; there is no
// package-level state.
package session

import (
	"context"

	"threadline/internal/api"
	"threadline/internal/domain"
	"threadline/internal/storage"
)

// TokenStore persists the bearer token in the session's credential slot.
// It satisfies api.TokenSink so the login facade can write through it.
type TokenStore struct {
	KV storage.Store
}

func NewTokenStore(kv storage.Store) *TokenStore { return &TokenStore{KV: kv} }

func (t *TokenStore) Token(ctx context.Context, sid string) (string, bool, error) {
	return t.KV.Get(ctx, sid, storage.SlotToken)
}

func (t *TokenStore) SaveToken(ctx context.Context, sid, token string) error {
	return t.KV.Set(ctx, sid, storage.SlotToken, token)
}

func (t *TokenStore) Purge(ctx context.Context, sid string) error {
	return t.KV.Delete(ctx, sid, storage.SlotToken)
}

// Manager resolves sessions against the backend. A session is in one of
// three states: no stored token (logged out), stored token that resolves
// (logged in), stored token the backend rejects (purged, logged out).
type Manager struct {
	Auth   *api.Auth
	Tokens *TokenStore
}

func NewManager(auth *api.Auth, tokens *TokenStore) *Manager {
	return &Manager{Auth: auth, Tokens: tokens}
}

// CurrentUser returns the logged-in user, or nil when the session has no
// usable credential. A token the backend no longer accepts is purged on the
// spot so the next page load starts clean.
func (m *Manager) CurrentUser(ctx context.Context, sid string) (*domain.User, error) {
	tok, ok, err := m.Tokens.Token(ctx, sid)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	u, err := m.Auth.Me(api.WithToken(ctx, tok))
	if err != nil {
		_ = m.Tokens.Purge(ctx, sid)
		return nil, nil
	}
	return u, nil
}

// Token returns the raw bearer token for outgoing backend calls.
func (m *Manager) Token(ctx context.Context, sid string) (string, bool) {
	tok, ok, err := m.Tokens.Token(ctx, sid)
	if err != nil {
		return "", false
	}
	return tok, ok
}

// Login authenticates against the backend. On success the facade has
// already stored the token; a failure changes nothing.
func (m *Manager) Login(ctx context.Context, sid string, creds domain.Credentials) (*domain.User, error) {
	if _, err := m.Auth.Login(ctx, sid, creds); err != nil {
		return nil, err
	}
	return m.CurrentUser(ctx, sid)
}

// Logout drops the stored token. The token itself is not revoked server
// side; it simply stops being presented.
func (m *Manager) Logout(ctx context.Context, sid string) error {
	return m.Tokens.Purge(ctx, sid)
}
