package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffold(t *testing.T) {
	t.Run("Should create a valid packages override placeholder", func(t *testing.T) {
		fsys := afero.NewMemMapFs()

		written, err := ScaffoldPackagesCustom(fsys, "/cfg/packages.custom.yml")

		require.NoError(t, err)
		assert.True(t, written)

		doc, err := LoadDocument(fsys, "/cfg/packages.custom.yml")
		require.NoError(t, err)
		res := PackagesCustom.Validate(doc)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Warnings)
	})

	t.Run("Should create a valid compose override placeholder", func(t *testing.T) {
		fsys := afero.NewMemMapFs()

		written, err := ScaffoldComposeCustom(fsys, "/cfg/docker-compose.custom.yml")

		require.NoError(t, err)
		assert.True(t, written)

		doc, err := LoadDocument(fsys, "/cfg/docker-compose.custom.yml")
		require.NoError(t, err)
		res := ComposeCustom.Validate(doc)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Warnings)
	})

	t.Run("Should not overwrite an existing file on a second run", func(t *testing.T) {
		fsys := afero.NewMemMapFs()

		written, err := ScaffoldPackagesCustom(fsys, "/cfg/packages.custom.yml")
		require.NoError(t, err)
		require.True(t, written)

		require.NoError(t, afero.WriteFile(fsys, "/cfg/packages.custom.yml", []byte("base:\n  packages: [jq]\n"), 0o644))

		written, err = ScaffoldPackagesCustom(fsys, "/cfg/packages.custom.yml")
		require.NoError(t, err)
		assert.False(t, written)

		content, err := afero.ReadFile(fsys, "/cfg/packages.custom.yml")
		require.NoError(t, err)
		assert.Equal(t, "base:\n  packages: [jq]\n", string(content))
	})
}
