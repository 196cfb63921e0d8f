package session

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureLoggedIn(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	now := time.UnixMilli(1_715_000_000_123)
	m := NewManager(store, func() time.Time { return now })

	current, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	user, err := m.EnsureLoggedIn(ctx, domain.Profile{NickName: "老王"})
	require.NoError(t, err)
	assert.Equal(t, "user_1715000000123", user.UserID)
	assert.Equal(t, "老王", user.NickName)
	assert.Equal(t, DefaultAvatar, user.AvatarURL)

	now = now.Add(time.Hour)
	again, err := m.EnsureLoggedIn(ctx, domain.Profile{NickName: "someone else"})
	require.NoError(t, err)
	assert.Equal(t, user, again)

	require.NoError(t, m.Logout(ctx))
	current, err = m.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}
