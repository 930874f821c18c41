// Package envfile renders the flat KEY=VALUE file handed to docker compose
// as its environment substitution input.
package envfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// proxyVars are the variable names forwarded from the host environment.
// Each name is checked in both lower-case and upper-case spelling, and
// both may be emitted when both are set.
var proxyVars = []string{"http_proxy", "https_proxy", "all_proxy", "no_proxy"}

// Inputs carries everything the renderer needs. Process state (environment,
// user identity, working directory) is resolved by the caller so rendering
// stays deterministic and testable.
type Inputs struct {
	// Environ is a snapshot of the host process environment.
	Environ map[string]string
	// User is the resolved user name the container runs as.
	User string
	// UID and GID are the numeric identifiers, already defaulted on
	// platforms without native ids.
	UID int
	GID int
	// Shell is the resolved login shell.
	Shell string
	// Home is the host home directory.
	Home string
	// GitRoot is the repository root, empty when none was found.
	GitRoot string
	// ImageName and ImageTag identify the container base image, already
	// defaulted when the merged config could not provide them.
	ImageName string
	ImageTag  string
	// BuildTarget is the compose build stage marker.
	BuildTarget string
	// Suffix is appended (hyphen-separated) to service and volume names;
	// empty means no separator and no suffix.
	Suffix string
}

// Render produces the ordered env file lines. Order matters only for
// human readability: consumers parse by key.
func Render(in Inputs) []string {
	var lines []string

	for _, name := range proxyVars {
		for _, spelled := range []string{name, strings.ToUpper(name)} {
			if val, ok := in.Environ[spelled]; ok && val != "" {
				lines = append(lines, spelled+"="+val)
			}
		}
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}

	lines = append(lines,
		"SHELL="+in.Shell,
		"USER="+in.User,
		fmt.Sprintf("USER_UID=%d", in.UID),
		fmt.Sprintf("USER_GID=%d", in.GID),
	)

	lines = append(lines,
		"",
		"IMAGE_NAME="+in.ImageName,
		"IMAGE_TAG="+in.ImageTag,
		"",
		"BUILD_TARGET="+in.BuildTarget,
	)

	suffix := ""
	if in.Suffix != "" {
		suffix = "-" + in.Suffix
	}
	lines = append(lines,
		"",
		"SERVICE_PREPARE="+in.User+"-devcontainer-prepare"+suffix,
		"SERVICE_MAIN="+in.User+"-devcontainer"+suffix,
		"",
		"VOLUME_LOCAL_SHARE="+in.User+"-devcontainer-local-share"+suffix,
		"VOLUME_CONFIG="+in.User+"-devcontainer-config"+suffix,
		"VOLUME_CACHE="+in.User+"-devcontainer-cache"+suffix,
		"VOLUME_VSCODE_EXT="+in.User+"-vscode-extensions"+suffix,
		"VOLUME_VSCODE_EXT_INSIDERS="+in.User+"-vscode-extensions-insiders"+suffix,
		"",
		// the consumer is a container expecting POSIX-style paths
		"HOME="+filepath.ToSlash(in.Home),
	)

	if in.GitRoot != "" {
		lines = append(lines, "GIT_REPO_ROOT="+filepath.ToSlash(in.GitRoot))
	}

	return lines
}

// Write stores the rendered lines at path, one per line with a trailing
// newline, overwriting any existing file.
func Write(fsys afero.Fs, path string, lines []string) error {
	content := strings.Join(lines, "\n") + "\n"
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write env file %s: %w", path, err)
	}
	return nil
}
