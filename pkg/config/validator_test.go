package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariant_Validate(t *testing.T) {
	t.Run("Should accept a compose document with services.devcontainer", func(t *testing.T) {
		doc := Document{
			"services": map[string]any{
				"devcontainer": map[string]any{},
			},
		}

		res := ComposeDefault.Validate(doc)

		assert.True(t, res.Valid)
		assert.Empty(t, res.Warnings)
	})

	t.Run("Should reject a compose document without services.devcontainer", func(t *testing.T) {
		doc := Document{"services": map[string]any{"web": map[string]any{}}}

		res := ComposeDefault.Validate(doc)

		assert.False(t, res.Valid)
		assert.Contains(t, res.Reason, "services.devcontainer")
	})

	t.Run("Should warn on disallowed compose override keys without failing", func(t *testing.T) {
		doc := Document{
			"services": map[string]any{
				"devcontainer": map[string]any{
					"volumes":    []any{},
					"privileged": true,
					"image":      "custom",
				},
			},
		}

		res := ComposeCustom.Validate(doc)

		assert.True(t, res.Valid)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, "unknown keys: image, privileged", res.Warnings[0])
	})

	t.Run("Should accept a complete packages document", func(t *testing.T) {
		doc := Document{
			"image_name": "ubuntu",
			"image_tag":  "24.04",
			"base":       map[string]any{"packages": []any{"git"}},
		}

		res := PackagesDefault.Validate(doc)

		assert.True(t, res.Valid)
	})

	t.Run("Should reject a packages document missing image_tag", func(t *testing.T) {
		doc := Document{
			"image_name": "ubuntu",
			"base":       map[string]any{"packages": []any{}},
		}

		res := PackagesDefault.Validate(doc)

		assert.False(t, res.Valid)
		assert.Contains(t, res.Reason, "image_tag")
	})

	t.Run("Should reject a packages document whose image_tag is not a string", func(t *testing.T) {
		doc := Document{
			"image_name": "ubuntu",
			"image_tag":  24.04,
			"base":       map[string]any{"packages": []any{}},
		}

		res := PackagesDefault.Validate(doc)

		assert.False(t, res.Valid)
	})

	t.Run("Should reject a packages document whose base.packages is not a sequence", func(t *testing.T) {
		doc := Document{
			"image_name": "ubuntu",
			"image_tag":  "24.04",
			"base":       map[string]any{"packages": "git"},
		}

		res := PackagesDefault.Validate(doc)

		assert.False(t, res.Valid)
		assert.Contains(t, res.Reason, "base.packages")
	})

	t.Run("Should warn on unknown packages override sections without failing", func(t *testing.T) {
		doc := Document{
			"base":   map[string]any{"packages": []any{"jq"}},
			"devenv": map[string]any{},
			"foo":    1,
		}

		res := PackagesCustom.Validate(doc)

		assert.True(t, res.Valid)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, "unknown sections: foo", res.Warnings[0])
	})

	t.Run("Should accept an empty packages override document", func(t *testing.T) {
		res := PackagesCustom.Validate(Document{})

		assert.True(t, res.Valid)
		assert.Empty(t, res.Warnings)
	})
}
