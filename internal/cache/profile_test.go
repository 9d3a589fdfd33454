package cache

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/notekeeper/notekeeper/internal/model"
)

func TestProfileKey(t *testing.T) {
	t.Parallel()

	if got := profileKey("u-1"); got != "profile:user:u-1" {
		t.Errorf("profileKey = %q, want profile:user:u-1", got)
	}
}

func TestToCachedProfile_OmitsPasswordHash(t *testing.T) {
	t.Parallel()

	user := &model.User{
		ID:           "u-1",
		Name:         "alice",
		Email:        "alice@x.com",
		PasswordHash: "$2a$10$secrethashvalue",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(toCachedProfile(user))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if strings.Contains(string(data), user.PasswordHash) {
		t.Errorf("cached profile must not contain password hash: %s", data)
	}
}

func TestNewProfileCache_DefaultTTL(t *testing.T) {
	t.Parallel()

	if p := NewProfileCache(nil, 0); p.ttl != DefaultProfileTTL {
		t.Errorf("ttl = %v, want %v", p.ttl, DefaultProfileTTL)
	}
	if p := NewProfileCache(nil, time.Minute); p.ttl != time.Minute {
		t.Errorf("ttl = %v, want 1m", p.ttl)
	}
}
