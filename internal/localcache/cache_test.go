package localcache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(dir)
	require.NoError(t, err)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	require.NoError(t, c.Set("location:uid-1", `{"latitude":20.6}`))

	v, ok := c.Get("location:uid-1")
	require.True(t, ok)
	assert.Equal(t, `{"latitude":20.6}`, v)
}

func TestCacheSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, c.Set("k", "v"))

	reopened, err := Open(dir)
	require.NoError(t, err)

	v, ok := reopened.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestCorruptFileIsDiscarded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cache.json"), []byte("{not json"), 0o644))

	c, err := Open(dir)
	require.NoError(t, err)

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Set("k", "v"))
	require.NoError(t, c.Delete("k"))

	_, ok := c.Get("k")
	assert.False(t, ok)
}
