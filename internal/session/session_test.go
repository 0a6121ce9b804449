package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dir := t.TempDir()
	store, err := New(Config{
		DatabasePath: filepath.Join(dir, "session.db"),
		KeyFilePath:  filepath.Join(dir, "session-key"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestStore_EmptyStore(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Token()
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = store.Account()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("reader@example.com", "token-value", "bearer"))

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "token-value", token)

	account, err := store.Account()
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", account)
}

func TestStore_SaveReplacesExistingSession(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("reader@example.com", "first", "bearer"))
	require.NoError(t, store.Save("reader@example.com", "second", "bearer"))

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("reader@example.com", "token-value", "bearer"))
	require.NoError(t, store.Clear())

	_, err := store.Token()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStore_TokenIsEncryptedAtRest(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "session.db")

	store, err := New(Config{
		DatabasePath: dbPath,
		KeyFilePath:  filepath.Join(dir, "session-key"),
	})
	require.NoError(t, err)
	require.NoError(t, store.Save("reader@example.com", "plaintext-token", "bearer"))
	require.NoError(t, store.Close())

	raw, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "plaintext-token")
}

func TestStore_GeneratesKeyAndSaltFiles(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "session-key")

	store, err := New(Config{
		DatabasePath: filepath.Join(dir, "session.db"),
		KeyFilePath:  keyPath,
	})
	require.NoError(t, err)
	defer store.Close()

	keyData, err := os.ReadFile(keyPath)
	require.NoError(t, err)
	assert.NotEmpty(t, keyData)

	saltData, err := os.ReadFile(keyPath + saltFileSuffix)
	require.NoError(t, err)
	assert.NotEmpty(t, saltData)
}

func TestStore_ReopenWithSameKeyFile(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		DatabasePath: filepath.Join(dir, "session.db"),
		KeyFilePath:  filepath.Join(dir, "session-key"),
	}

	store, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, store.Save("reader@example.com", "token-value", "bearer"))
	require.NoError(t, store.Close())

	reopened, err := New(cfg)
	require.NoError(t, err)
	defer reopened.Close()

	token, err := reopened.Token()
	require.NoError(t, err)
	assert.Equal(t, "token-value", token)
}

func TestStore_ExplicitSecret(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		DatabasePath: filepath.Join(dir, "session.db"),
		KeyFilePath:  filepath.Join(dir, "session-key"),
		Secret:       "explicit-secret",
	}

	store, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, store.Save("reader@example.com", "token-value", "bearer"))
	require.NoError(t, store.Close())

	// An explicit secret skips the key file entirely.
	_, err = os.Stat(filepath.Join(dir, "session-key"))
	assert.True(t, os.IsNotExist(err))

	reopened, err := New(cfg)
	require.NoError(t, err)
	defer reopened.Close()

	token, err := reopened.Token()
	require.NoError(t, err)
	assert.Equal(t, "token-value", token)
}
