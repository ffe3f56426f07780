package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "gtree")
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	_, statErr := os.Stat(dir)
	assert.NoError(t, statErr)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestConfigStore_SetPersistsImmediately(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyLastFile, "/home/me/family.gtr"))
	require.NoError(t, store.Set(KeyRenderASCII, true))
	require.NoError(t, store.Set(KeyMaxAgeYears, 120))

	// A second store over the same directory sees the values.
	again, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/home/me/family.gtr", again.GetString(KeyLastFile))
	assert.True(t, again.GetBool(KeyRenderASCII))
	assert.Equal(t, 120, again.GetInt(KeyMaxAgeYears))
}

func TestConfigStore_MissingKeysDefault(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, store.GetString(KeyLastFile))
	assert.False(t, store.GetBool(KeyRenderASCII))
	assert.Zero(t, store.GetInt(KeyMaxAgeYears))

	_, ok := store.Get("nope")
	assert.False(t, ok)
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[render]\nascii = true\n\n[validate]\nmax_age_years = 105\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.True(t, store.GetBool(KeyRenderASCII))
	assert.Equal(t, 105, store.GetInt(KeyMaxAgeYears))
}

func TestConfigStore_WrongTypeDefaults(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyRenderASCII, "yes"))
	assert.False(t, store.GetBool(KeyRenderASCII))
	assert.Equal(t, "yes", store.GetString(KeyRenderASCII))
}
