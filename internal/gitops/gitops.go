// Package gitops records month file changes in git when the data directory
// is a repository.
package gitops

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Author identifies who commits ledger changes.
type Author struct {
	Name  string
	Email string
}

// Init initializes a new git repository at dir.
func Init(dir string) error {
	if out, err := git(dir, nil, "init"); err != nil {
		return fmt.Errorf("git init: %s: %w", out, err)
	}
	return nil
}

// ErrNoChanges is returned by CommitFile when the file matches what is
// already committed.
var ErrNoChanges = errors.New("no changes to commit")

// CommitFile stages a single file under dir and commits it. Returns the
// short commit hash, or ErrNoChanges when nothing was staged.
func CommitFile(dir, file, message string, author Author) (string, error) {
	rel, err := filepath.Rel(dir, file)
	if err != nil {
		return "", fmt.Errorf("locating %s in %s: %w", file, dir, err)
	}

	if out, err := git(dir, nil, "add", "--", rel); err != nil {
		return "", fmt.Errorf("git add: %s: %w", out, err)
	}

	staged, err := hasStaged(dir, rel)
	if err != nil {
		return "", err
	}
	if !staged {
		return "", ErrNoChanges
	}

	// Committer identity comes from the environment so the commit works
	// without a global git config.
	env := []string{
		"GIT_AUTHOR_NAME=" + author.Name,
		"GIT_AUTHOR_EMAIL=" + author.Email,
		"GIT_COMMITTER_NAME=" + author.Name,
		"GIT_COMMITTER_EMAIL=" + author.Email,
	}
	if out, err := git(dir, env, "commit", "-m", message, "--", rel); err != nil {
		return "", fmt.Errorf("git commit: %s: %w", out, err)
	}

	out, err := git(dir, nil, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// IsRepo reports whether dir is the root of a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// hasStaged reports whether rel differs between the index and HEAD.
func hasStaged(dir, rel string) (bool, error) {
	out, err := git(dir, nil, "diff", "--cached", "--quiet", "--", rel)
	if err == nil {
		return false, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return true, nil
	}
	return false, fmt.Errorf("git diff: %s: %w", out, err)
}

func git(dir string, env []string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	out, err := cmd.CombinedOutput()
	return string(out), err
}
