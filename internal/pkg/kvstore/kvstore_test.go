package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	_, ok := s.Get("auth_token")
	assert.False(t, ok)

	require.NoError(t, s.Set("auth_token", "abc"))
	v, ok := s.Get("auth_token")
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	require.NoError(t, s.Set("auth_token", "def"))
	v, _ = s.Get("auth_token")
	assert.Equal(t, "def", v)

	require.NoError(t, s.Remove("auth_token"))
	_, ok = s.Get("auth_token")
	assert.False(t, ok)

	require.NoError(t, s.Remove("never-set"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	s, err := OpenFileStore(filepath.Join(t.TempDir(), "nested", "state.yaml"))
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestFileStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("sidebar_open", "false"))
	require.NoError(t, s.Set("auth_token", "token"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened, err := OpenFileStore(path)
	require.NoError(t, err)
	v, ok := reopened.Get("sidebar_open")
	assert.True(t, ok)
	assert.Equal(t, "false", v)

	require.NoError(t, reopened.Remove("auth_token"))
	again, err := OpenFileStore(path)
	require.NoError(t, err)
	_, ok = again.Get("auth_token")
	assert.False(t, ok)
}

func TestOpenFileStoreRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o600))

	_, err := OpenFileStore(path)
	assert.Error(t, err)
}
