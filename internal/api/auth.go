package api

import (
	"context"

	"threadline/internal/domain"
)

// TokenSink stores the credential issued at login, keyed by session.
type TokenSink interface {
	SaveToken(ctx context.Context, sid, token string) error
}

type Auth struct {
	C      *Client
	Tokens TokenSink
}

func (a *Auth) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	var u domain.User
	if err := a.C.Post(ctx, "/auth/register", reg, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login exchanges credentials for a bearer token and persists it under the
// session before returning. A failed login leaves any stored token as it was.
func (a *Auth) Login(ctx context.Context, sid string, creds domain.Credentials) (*domain.AuthToken, error) {
	var tok domain.AuthToken
	if err := a.C.Post(ctx, "/auth/login", creds, &tok); err != nil {
		return nil, err
	}
	if err := a.Tokens.SaveToken(ctx, sid, tok.AccessToken); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Me resolves the current user from the bearer token on ctx.
func (a *Auth) Me(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := a.C.Get(ctx, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
