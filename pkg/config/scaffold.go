package config

import (
	"fmt"

	"github.com/spf13/afero"
)

const composeCustomScaffold = `# Custom docker-compose overrides
# Examples: environment, volumes, devices, ports, extra_hosts

services:
  devcontainer:
    environment: []
    volumes: []
    devices: []
`

const packagesCustomScaffold = `# Custom package overrides (merged with packages.default.yml)

base:
  packages: []

devenv:
  packages: []
`

// ScaffoldComposeCustom writes a placeholder compose override file when
// path does not exist. Returns whether a file was written; an existing
// file is left untouched, so repeated calls perform at most one write.
func ScaffoldComposeCustom(fsys afero.Fs, path string) (bool, error) {
	return scaffold(fsys, path, composeCustomScaffold)
}

// ScaffoldPackagesCustom writes a placeholder packages override file when
// path does not exist. Same idempotency contract as ScaffoldComposeCustom.
func ScaffoldPackagesCustom(fsys afero.Fs, path string) (bool, error) {
	return scaffold(fsys, path, packagesCustomScaffold)
}

func scaffold(fsys afero.Fs, path, content string) (bool, error) {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists {
		return false, nil
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}
