package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, 0755))

	t.Run("existing path", func(t *testing.T) {
		got, err := Canonicalize(target)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("symlink resolves to target", func(t *testing.T) {
		link := filepath.Join(dir, "link")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		viaLink, err := Canonicalize(link)
		require.NoError(t, err)
		direct, err := Canonicalize(target)
		require.NoError(t, err)
		assert.Equal(t, direct, viaLink)
	})

	t.Run("missing path falls back to absolute", func(t *testing.T) {
		missing := filepath.Join(dir, "nope", "..", "gone")
		got, err := Canonicalize(missing)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPathUnresolvable)
		assert.Equal(t, filepath.Join(dir, "gone"), got)
	})
}

func TestPathSet(t *testing.T) {
	dir := t.TempDir()
	vendor := filepath.Join(dir, "vendor")
	require.NoError(t, os.Mkdir(vendor, 0755))
	missing := filepath.Join(dir, "missing")

	set, unresolved := NewPathSet(vendor, missing, "")

	assert.Equal(t, []string{missing}, unresolved)
	assert.True(t, set.Contains(vendor))
	assert.True(t, set.Contains(vendor+string(filepath.Separator)))
	assert.True(t, set.Contains(missing))

	// Exact match only, never prefixes
	assert.False(t, set.Contains(dir))
	assert.False(t, set.Contains(filepath.Join(vendor, "pkg")))
	assert.False(t, set.Contains(vendor+"ed"))

	var empty *PathSet
	assert.False(t, empty.Contains(vendor))
	assert.Equal(t, 0, empty.Len())
}
