package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/notekeeper/notekeeper/internal/model"
)

// memProfileCache records cache traffic.
type memProfileCache struct {
	mu      sync.Mutex
	entries map[string]*model.User
	gets    int
	sets    int
	getErr  error
}

func newMemProfileCache() *memProfileCache {
	return &memProfileCache{entries: make(map[string]*model.User)}
}

func (c *memProfileCache) GetProfile(_ context.Context, userID string) (*model.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	u, ok := c.entries[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (c *memProfileCache) SetProfile(_ context.Context, user *model.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	cp := *user
	cp.PasswordHash = ""
	c.entries[user.ID] = &cp
	return nil
}

// stepClock advances by one second on every call.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

var errStoreDown = errors.New("connection refused")
