// Package session keeps the identity of the person using the client.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/kvstore"
)

const (
	DefaultNickName = "用户"
	DefaultAvatar   = "/static/default-avatar.png"
)

type Manager struct {
	store kvstore.Store
	now   func() time.Time

	mu sync.Mutex
}

func NewManager(store kvstore.Store, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{store: store, now: now}
}

// Current returns the cached user, or nil when nobody has logged in.
func (m *Manager) Current(ctx context.Context) (*domain.UserInfo, error) {
	var user domain.UserInfo
	ok, err := kvstore.GetJSON(ctx, m.store, domain.UserStorageKey, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

// EnsureLoggedIn returns the cached user, creating one from profile on first
// use. The id is user_<epoch-ms> and never changes afterwards.
func (m *Manager) EnsureLoggedIn(ctx context.Context, profile domain.Profile) (*domain.UserInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user, err := m.Current(ctx); err != nil || user != nil {
		return user, err
	}

	user := &domain.UserInfo{
		UserID:    fmt.Sprintf("user_%d", m.now().UnixMilli()),
		NickName:  profile.NickName,
		AvatarURL: profile.AvatarURL,
	}
	if user.NickName == "" {
		user.NickName = DefaultNickName
	}
	if user.AvatarURL == "" {
		user.AvatarURL = DefaultAvatar
	}
	if err := kvstore.SetJSON(ctx, m.store, domain.UserStorageKey, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout forgets the cached user.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Delete(ctx, domain.UserStorageKey)
}
