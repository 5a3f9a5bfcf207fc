package fs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFSStore_SaveLoad(t *testing.T) {
	store := TokenFSStore{Path: filepath.Join(t.TempDir(), "token")}

	require.NoError(t, store.Save("abc.def.ghi"))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", got)
}

func TestTokenFSStore_LoadTrimsWhitespace(t *testing.T) {
	store := TokenFSStore{Path: filepath.Join(t.TempDir(), "token")}
	require.NoError(t, store.Save("  token-with-spaces \n"))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "token-with-spaces", got)
}

func TestTokenFSStore_EmptyToken(t *testing.T) {
	store := TokenFSStore{Path: filepath.Join(t.TempDir(), "token")}
	assert.Error(t, store.Save("   "))
}

func TestTokenFSStore_LoadMissingFile(t *testing.T) {
	store := TokenFSStore{Path: filepath.Join(t.TempDir(), "nope")}
	_, err := store.Load()
	assert.Error(t, err)
}
