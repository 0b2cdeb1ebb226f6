// ABOUTME: Unit tests for identity context propagation helpers
// ABOUTME: Tests WithIdentity, FromContext, and MustFromContext

package auth

import (
	"context"
	"testing"
)

func TestWithIdentity_RoundTrip(t *testing.T) {
	id := &Identity{Username: "alice"}

	ctx := WithIdentity(context.Background(), id)
	got := FromContext(ctx)

	if got == nil {
		t.Fatal("FromContext() = nil, want identity")
	}
	if got.Username != "alice" {
		t.Errorf("Username = %q, want %q", got.Username, "alice")
	}
}

func TestFromContext_Missing(t *testing.T) {
	got := FromContext(context.Background())
	if got != nil {
		t.Errorf("FromContext() = %v, want nil", got)
	}
}

func TestMustFromContext_Present(t *testing.T) {
	ctx := WithIdentity(context.Background(), &Identity{Username: "bob"})

	got := MustFromContext(ctx)
	if got.Username != "bob" {
		t.Errorf("Username = %q, want %q", got.Username, "bob")
	}
}

func TestMustFromContext_PanicsWhenMissing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustFromContext() should panic without identity")
		}
	}()

	MustFromContext(context.Background())
}
