package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	v, err := GetString(ctx, s, "mode", "local")
	require.NoError(t, err)
	assert.Equal(t, "local", v)

	require.NoError(t, s.Set(ctx, "mode", []byte("api")))
	v, err = GetString(ctx, s, "mode", "local")
	require.NoError(t, err)
	assert.Equal(t, "api", v)

	type doc struct {
		Items []string `json:"items"`
	}
	require.NoError(t, SetJSON(ctx, s, "doc", doc{Items: []string{"a", "b"}}))
	var got doc
	found, err := GetJSON(ctx, s, "doc", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, got.Items)

	require.NoError(t, s.Delete(ctx, "mode"))
	_, err = s.Get(ctx, "mode")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory())
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	buf := []byte("abc")
	require.NoError(t, m.Set(context.Background(), "k", buf))
	buf[0] = 'z'

	got, err := m.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "client.json")
	s, err := NewFile(path)
	require.NoError(t, err)
	testStore(t, s)

	reopened, err := NewFile(path)
	require.NoError(t, err)
	found, err := GetJSON(context.Background(), reopened, "doc", &struct{}{})
	require.NoError(t, err)
	assert.True(t, found)
}

func TestFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := NewFile(path)
	require.NoError(t, err)
	_, err = s.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
