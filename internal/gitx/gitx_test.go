package gitx

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoRoot(t *testing.T) {
	t.Run("Should find the root from a nested directory", func(t *testing.T) {
		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		nested := filepath.Join(dir, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		root, ok := RepoRoot(nested)

		require.True(t, ok)
		// resolve symlinks so macOS /private tmp paths compare equal
		wantRoot, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		gotRoot, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)
		assert.Equal(t, wantRoot, gotRoot)
	})

	t.Run("Should report not found outside any repository", func(t *testing.T) {
		dir := t.TempDir()

		_, ok := RepoRoot(dir)

		assert.False(t, ok)
	})
}
