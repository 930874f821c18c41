// Package gitx locates the enclosing git repository, replacing shelling
// out to `git rev-parse --show-toplevel`.
package gitx

import (
	git "github.com/go-git/go-git/v5"
)

// RepoRoot walks up from dir looking for a git worktree and returns its
// root. Absence of a repository is a normal outcome, not an error.
func RepoRoot(dir string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	wt, err := repo.Worktree()
	if err != nil {
		// bare repository, no worktree root to report
		return "", false
	}
	return wt.Filesystem.Root(), true
}
