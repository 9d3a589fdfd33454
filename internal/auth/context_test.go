package auth

import (
	"context"
	"testing"

	"github.com/notekeeper/notekeeper/internal/model"
)

func TestIdentityContext_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := ContextWithIdentity(context.Background(), model.Identity{UserID: "u-1", Email: "a@b.co"})

	identity, ok := IdentityFromContext(ctx)
	if !ok {
		t.Fatal("expected identity in context")
	}
	if identity.UserID != "u-1" || identity.Email != "a@b.co" {
		t.Errorf("unexpected identity: %+v", identity)
	}
	if got := UserIDFromContext(ctx); got != "u-1" {
		t.Errorf("UserIDFromContext = %q, want u-1", got)
	}
}

func TestIdentityContext_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := IdentityFromContext(context.Background()); ok {
		t.Error("expected no identity in empty context")
	}
	if got := UserIDFromContext(context.Background()); got != "" {
		t.Errorf("UserIDFromContext = %q, want empty", got)
	}

	ctx := ContextWithIdentity(context.Background(), model.Identity{})
	if _, ok := IdentityFromContext(ctx); ok {
		t.Error("identity without user id should not count as authenticated")
	}
}
