package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Run("Should return built-in defaults without environment overrides", func(t *testing.T) {
		s, err := LoadSettings()

		require.NoError(t, err)
		assert.Equal(t, "developer", s.DefaultUser)
		assert.Equal(t, "/bin/bash", s.DefaultShell)
		assert.Equal(t, 1000, s.FallbackUID)
		assert.Equal(t, 1000, s.FallbackGID)
		assert.Equal(t, "ubuntu", s.FallbackImageName)
		assert.Equal(t, "24.04", s.FallbackImageTag)
		assert.Equal(t, "devenv", s.BuildTarget)
	})

	t.Run("Should apply DEVCTL-prefixed environment overrides", func(t *testing.T) {
		t.Setenv("DEVCTL_FALLBACK_IMAGE_NAME", "debian")
		t.Setenv("DEVCTL_FALLBACK_UID", "1234")

		s, err := LoadSettings()

		require.NoError(t, err)
		assert.Equal(t, "debian", s.FallbackImageName)
		assert.Equal(t, 1234, s.FallbackUID)
		// untouched fields keep their defaults
		assert.Equal(t, "24.04", s.FallbackImageTag)
	})
}
