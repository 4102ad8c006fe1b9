package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSubDir(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })

	tmp := t.TempDir()
	require.NoError(t, os.Chdir(tmp))

	dir, err := EnsureSubDir("downloads")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, "downloads", filepath.Base(dir))

	// Idempotent.
	again, err := EnsureSubDir("downloads")
	require.NoError(t, err)
	assert.Equal(t, dir, again)
}
