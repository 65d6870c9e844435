package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionPersistsToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	s, err := NewSession(path)
	require.NoError(t, err)
	assert.Empty(t, s.Token())

	require.NoError(t, s.SetToken("abc123"))
	assert.Equal(t, "abc123", s.Token())

	reloaded, err := NewSession(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", reloaded.Token())
}

func TestSessionCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token")

	s, err := NewSession(path)
	require.NoError(t, err)
	require.NoError(t, s.SetToken("tok"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tok\n", string(raw))
}

func TestSessionClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	s, err := NewSession(path)
	require.NoError(t, err)
	require.NoError(t, s.SetToken("abc123"))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-cleared session is not an error.
	require.NoError(t, s.Clear())
}

func TestSessionMissingFileMeansNoToken(t *testing.T) {
	s, err := NewSession(filepath.Join(t.TempDir(), "never-written"))
	require.NoError(t, err)
	assert.Empty(t, s.Token())
}
