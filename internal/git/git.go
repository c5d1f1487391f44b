// Package git answers the repository questions grib needs: where the
// repository lives and which branch is checked out.
package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrDetachedHead is returned when HEAD does not point at a branch.
var ErrDetachedHead = errors.New("HEAD is detached; check out a branch first")

// Repo runs git in Dir, or in the current directory when Dir is empty.
type Repo struct {
	Dir string
}

// Root returns the top-level directory of the repository.
func (r Repo) Root() (string, error) {
	out, err := r.output("rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}
	return out, nil
}

// CurrentBranch returns the short name of the checked-out branch.
func (r Repo) CurrentBranch() (string, error) {
	out, err := r.output("symbolic-ref", "-q", "--short", "HEAD")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", ErrDetachedHead
		}
		return "", fmt.Errorf("failed to read current branch: %w", err)
	}
	if out == "" {
		return "", ErrDetachedHead
	}
	return out, nil
}

func (r Repo) output(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
