package storage

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/nacl/secretbox"
)

var errUnseal = errors.New("sealed value did not authenticate")

// Sealed wraps a Store and encrypts values at rest with a server-side
// secret. Used for the bearer-token slot so a leaked slot database does
// not leak live credentials. A value that fails to open reads as absent.
type Sealed struct {
	Inner Store
	key   [32]byte
}

func NewSealed(inner Store, secret string) *Sealed {
	s := &Sealed{Inner: inner}
	s.key = sha256.Sum256([]byte(secret))
	return s
}

func (s *Sealed) Get(ctx context.Context, sid, slot string) (string, bool, error) {
	v, ok, err := s.Inner.Get(ctx, sid, slot)
	if err != nil || !ok {
		return "", ok, err
	}
	plain, err := s.open(v)
	if err != nil {
		// Wrong key or tampered value: treat as never written.
		return "", false, nil
	}
	return plain, true, nil
}

func (s *Sealed) Set(ctx context.Context, sid, slot, value string) error {
	return s.Inner.Set(ctx, sid, slot, s.seal(value))
}

func (s *Sealed) Delete(ctx context.Context, sid, slot string) error {
	return s.Inner.Delete(ctx, sid, slot)
}

func (s *Sealed) seal(plain string) string {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		panic(err) // crypto/rand failure is not recoverable
	}
	out := secretbox.Seal(nonce[:], []byte(plain), &nonce, &s.key)
	return base64.StdEncoding.EncodeToString(out)
}

func (s *Sealed) open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(raw) < 24 {
		return "", errUnseal
	}
	var nonce [24]byte
	copy(nonce[:], raw[:24])
	plain, ok := secretbox.Open(nil, raw[24:], &nonce, &s.key)
	if !ok {
		return "", errUnseal
	}
	return string(plain), nil
}
