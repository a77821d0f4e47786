package storage

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBridge_RoundTrip(t *testing.T) {
	bridge := NewBridge(NewMemoryBackend(), testLogger())

	bridge.Write("shopping_cart", []string{"a", "b", "c"})

	var got []string
	require.True(t, bridge.Read("shopping_cart", &got))
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestBridge_MissingKey(t *testing.T) {
	bridge := NewBridge(NewMemoryBackend(), testLogger())

	var got []string
	assert.False(t, bridge.Read("shopping_cart", &got))
}

func TestBridge_CorruptEntryDiscarded(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Set("shopping_cart", []byte("{definitely not json")))
	bridge := NewBridge(backend, testLogger())

	var got []string
	assert.False(t, bridge.Read("shopping_cart", &got))

	// The corrupt entry must be gone, not left to fail again.
	_, ok, err := backend.Get("shopping_cart")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBridge_Remove(t *testing.T) {
	backend := NewMemoryBackend()
	bridge := NewBridge(backend, testLogger())

	bridge.Write("user_favorites", map[string]int{"x": 1})
	bridge.Remove("user_favorites")

	_, ok, err := backend.Get("user_favorites")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileBackend_RoundTrip(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, backend.Set("auth_user", []byte(`{"id":"u1"}`)))

	data, ok, err := backend.Get("auth_user")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"id":"u1"}`, string(data))

	require.NoError(t, backend.Delete("auth_user"))
	_, ok, err = backend.Get("auth_user")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileBackend_DeleteAbsentKey(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, backend.Delete("never_written"))
}

func TestFileBackend_RejectsPathKeys(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", `a\b`} {
		_, _, err := backend.Get(key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestFileBackend_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	backend, err := NewFileBackend(dir)
	require.NoError(t, err)
	require.NoError(t, backend.Set("user_orders", []byte(`[1,2,3]`)))

	reopened, err := NewFileBackend(dir)
	require.NoError(t, err)
	data, ok, err := reopened.Get("user_orders")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[1,2,3]`, string(data))

	// No stray temp files left behind.
	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
