package setup

import (
	"os"
	"strings"

	"github.com/devctl/devctl/pkg/config"
)

// HostContext is the process-wide state the pipeline depends on, captured
// once so the pipeline functions never read globals themselves.
type HostContext struct {
	Environ map[string]string
	UID     int
	GID     int
	Home    string
	WorkDir string
}

// CurrentHostContext snapshots the running process. Numeric ids fall back
// to the configured pair on platforms without native uid/gid.
func CurrentHostContext(settings *config.Settings) HostContext {
	environ := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			environ[key] = value
		}
	}

	uid, gid := os.Getuid(), os.Getgid()
	if uid < 0 || gid < 0 {
		uid, gid = settings.FallbackUID, settings.FallbackGID
	}

	home, _ := os.UserHomeDir()
	workDir, _ := os.Getwd()

	return HostContext{
		Environ: environ,
		UID:     uid,
		GID:     gid,
		Home:    home,
		WorkDir: workDir,
	}
}

// User resolves the user name from the environment, falling back to the
// configured default.
func (h HostContext) User(settings *config.Settings) string {
	if user := h.Environ["USER"]; user != "" {
		return user
	}
	if user := h.Environ["USERNAME"]; user != "" {
		return user
	}
	return settings.DefaultUser
}

// Shell resolves the login shell from the environment, falling back to the
// configured default.
func (h HostContext) Shell(settings *config.Settings) string {
	if shell := h.Environ["SHELL"]; shell != "" {
		return shell
	}
	return settings.DefaultShell
}
