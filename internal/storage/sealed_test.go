package storage

import (
	"context"
	"strings"
	"testing"
)

func TestSealedRoundTrip(t *testing.T) {
	inner, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	s := NewSealed(inner, "test-secret")
	ctx := context.Background()

	if err := s.Set(ctx, "sid1", SlotToken, "bearer-abc123"); err != nil {
		t.Fatal(err)
	}
	v, ok, err := s.Get(ctx, "sid1", SlotToken)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if v != "bearer-abc123" {
		t.Fatalf("got %q", v)
	}

	// The value at rest must not contain the plaintext
	raw, _, _ := inner.Get(ctx, "sid1", SlotToken)
	if strings.Contains(raw, "bearer-abc123") {
		t.Fatalf("plaintext stored at rest: %q", raw)
	}
}

func TestSealedTamperedValueReadsAbsent(t *testing.T) {
	inner, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	s := NewSealed(inner, "test-secret")
	ctx := context.Background()

	_ = s.Set(ctx, "sid1", SlotToken, "bearer-abc123")
	_ = inner.Set(ctx, "sid1", SlotToken, "garbage-not-sealed")

	_, ok, err := s.Get(ctx, "sid1", SlotToken)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("tampered value must read as absent")
	}
}

func TestSealedWrongKeyReadsAbsent(t *testing.T) {
	inner, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	_ = NewSealed(inner, "secret-one").Set(ctx, "sid1", SlotToken, "tok")
	_, ok, err := NewSealed(inner, "secret-two").Get(ctx, "sid1", SlotToken)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("value sealed under another key must read as absent")
	}
}
