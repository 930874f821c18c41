package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment overrides for the tool's own
// runtime settings.
const envPrefix = "DEVCTL_"

// Settings holds the tool's runtime defaults: fallback identity and image
// values used when the host or the merged config cannot provide them.
// Every field can be overridden through a DEVCTL_-prefixed environment
// variable, e.g. DEVCTL_FALLBACK_IMAGE_NAME.
type Settings struct {
	DefaultUser       string `koanf:"default_user"`
	DefaultShell      string `koanf:"default_shell"`
	FallbackUID       int    `koanf:"fallback_uid"`
	FallbackGID       int    `koanf:"fallback_gid"`
	FallbackImageName string `koanf:"fallback_image_name"`
	FallbackImageTag  string `koanf:"fallback_image_tag"`
	BuildTarget       string `koanf:"build_target"`
}

// DefaultSettings returns the built-in settings values.
func DefaultSettings() Settings {
	return Settings{
		DefaultUser:       "developer",
		DefaultShell:      "/bin/bash",
		FallbackUID:       1000,
		FallbackGID:       1000,
		FallbackImageName: "ubuntu",
		FallbackImageTag:  "24.04",
		BuildTarget:       "devenv",
	}
}

// LoadSettings builds the effective Settings from the defaults overlaid
// with DEVCTL_-prefixed environment variables.
func LoadSettings() (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultSettings(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default settings: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load settings from environment: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return &s, nil
}
