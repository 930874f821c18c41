// Package shell writes the in-container shell configuration after the
// devcontainer starts: readline settings, a bash profile for the VS Code
// terminal, and pre-commit hooks.
package shell

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/devctl/devctl/pkg/logger"
)

const inputrcContent = `set completion-ignore-case on
set show-all-if-ambiguous on
set colored-stats on
set colored-completion-prefix on
set visible-stats on
"\e[A": history-search-backward
"\e[B": history-search-forward
"\e[1;5C": forward-word
"\e[1;5D": backward-word
`

const vscodeProfileContent = `# Bash completion
if ! shopt -oq posix; then
  [ -f /usr/share/bash-completion/bash_completion ] && . /usr/share/bash-completion/bash_completion
fi

# Git prompt
export GIT_PS1_SHOWDIRTYSTATE=1
export GIT_PS1_SHOWSTASHSTATE=1
export GIT_PS1_SHOWUNTRACKEDFILES=1
export GIT_PS1_SHOWUPSTREAM="auto"

_c_reset='\[\033[0m\]'
_c_user='\[\033[01;32m\]'
_c_path='\[\033[01;36m\]'
_c_git='\[\033[01;33m\]'

if type -t __git_ps1 &>/dev/null; then
    PS1="${_c_user}\u${_c_reset}@\h:${_c_path}\w${_c_reset}${_c_git}\$(__git_ps1 ' (%s)')${_c_reset}\n\$ "
else
    PS1="${_c_user}\u${_c_reset}@\h:${_c_path}\w${_c_reset}\n\$ "
fi

# History
export HISTFILE="$HOME/.local/share/bash/history"
export HISTSIZE=10000
export HISTFILESIZE=20000
export HISTCONTROL=ignoredups:erasedups
shopt -s histappend
PROMPT_COMMAND="history -a; history -c; history -r${PROMPT_COMMAND:+; $PROMPT_COMMAND}"

# Shell options
shopt -s checkwinsize cdspell dirspell nocaseglob globstar 2>/dev/null

# Aliases
alias ll='ls -lh' la='ls -lAh' ..='cd ..' ...='cd ../..'
alias grep='grep --color=auto'
alias bz='bazelisk'

# Environment
export EDITOR="code --wait"
export PYTHONDONTWRITEBYTECODE=1 PYTHONUNBUFFERED=1

# Bazel completion
command -v bazelisk &>/dev/null && eval "$(bazelisk completion bash)"
`

const profileEnableLine = "[ -f ~/.vscode_profile ] && . ~/.vscode_profile"

// Configurator applies the post-start shell setup for one home directory.
type Configurator struct {
	fs      afero.Fs
	home    string
	gitRoot string
	runner  CommandRunner
}

// New builds a Configurator. gitRoot may be empty when the container is
// not inside a repository; pre-commit setup is skipped then.
func New(fsys afero.Fs, home, gitRoot string, runner CommandRunner) *Configurator {
	return &Configurator{fs: fsys, home: home, gitRoot: gitRoot, runner: runner}
}

// Apply performs the full post-start setup. Filesystem write failures are
// fatal; everything around pre-commit is best-effort and only warns.
func (c *Configurator) Apply(ctx context.Context) error {
	log := logger.FromContext(ctx)

	histDir := filepath.Join(c.home, ".local", "share", "bash")
	if err := c.fs.MkdirAll(histDir, 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	if err := c.writeInputrc(); err != nil {
		return err
	}
	log.Info("configured .inputrc")

	if err := c.writeProfile(); err != nil {
		return err
	}
	log.Info("created .vscode_profile")

	appended, err := c.enableProfile()
	if err != nil {
		return err
	}
	if appended {
		log.Info("enabled .vscode_profile in .bashrc")
	} else {
		log.Info(".vscode_profile already enabled")
	}

	c.installPreCommit(ctx)
	return nil
}

func (c *Configurator) writeInputrc() error {
	path := filepath.Join(c.home, ".inputrc")
	if err := afero.WriteFile(c.fs, path, []byte(inputrcContent), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (c *Configurator) writeProfile() error {
	path := filepath.Join(c.home, ".vscode_profile")
	if err := afero.WriteFile(c.fs, path, []byte(vscodeProfileContent), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// enableProfile appends the sourcing line to .bashrc unless it is already
// present, so repeated post-start runs stay idempotent.
func (c *Configurator) enableProfile() (bool, error) {
	path := filepath.Join(c.home, ".bashrc")
	var content string
	if data, err := afero.ReadFile(c.fs, path); err == nil {
		content = string(data)
	}
	if strings.Contains(content, ".vscode_profile") {
		return false, nil
	}
	updated := content + "\n" + profileEnableLine + "\n"
	if err := afero.WriteFile(c.fs, path, []byte(updated), 0o644); err != nil {
		return false, fmt.Errorf("failed to update %s: %w", path, err)
	}
	return true, nil
}

func (c *Configurator) installPreCommit(ctx context.Context) {
	log := logger.FromContext(ctx)
	if c.gitRoot == "" {
		log.Warn("not in a git repository, skipping pre-commit")
		return
	}
	configPath := filepath.Join(c.gitRoot, ".pre-commit-config.yaml")
	if exists, err := afero.Exists(c.fs, configPath); err != nil || !exists {
		log.Warn("no .pre-commit-config.yaml found, skipping pre-commit")
		return
	}
	if err := c.runner.Run(ctx, c.gitRoot, "pre-commit", "install"); err != nil {
		log.Warn("failed to install pre-commit hooks", "error", err)
		return
	}
	log.Info("installed pre-commit hooks")
}
