package git

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// setupTestRepo creates a temporary git repository with one commit on
// branch main.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	runGit(t, tmpDir, "init", "-b", "main")
	runGit(t, tmpDir, "config", "user.email", "test@test.com")
	runGit(t, tmpDir, "config", "user.name", "Test User")

	testFile := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("test content"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	runGit(t, tmpDir, "add", ".")
	runGit(t, tmpDir, "commit", "-m", "initial commit")

	return tmpDir
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

func TestRoot_InGitRepo(t *testing.T) {
	repoDir := setupTestRepo(t)
	sub := filepath.Join(repoDir, "nested", "dir")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	root, err := Repo{Dir: sub}.Root()
	if err != nil {
		t.Fatalf("Root failed: %v", err)
	}

	// Resolve symlinks for comparison (macOS /var -> /private/var)
	expectedRoot, err := filepath.EvalSymlinks(repoDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks: %v", err)
	}
	actualRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatalf("failed to resolve symlinks: %v", err)
	}

	if actualRoot != expectedRoot {
		t.Errorf("expected root %s, got %s", expectedRoot, actualRoot)
	}
}

func TestRoot_NotInGitRepo(t *testing.T) {
	if _, err := (Repo{Dir: t.TempDir()}).Root(); err == nil {
		t.Error("expected error when not in git repo")
	}
}

func TestCurrentBranch(t *testing.T) {
	repoDir := setupTestRepo(t)
	runGit(t, repoDir, "checkout", "-b", "feature/x")

	branch, err := Repo{Dir: repoDir}.CurrentBranch()
	if err != nil {
		t.Fatalf("CurrentBranch failed: %v", err)
	}
	if branch != "feature/x" {
		t.Errorf("expected branch feature/x, got %q", branch)
	}
}

func TestCurrentBranch_DetachedHead(t *testing.T) {
	repoDir := setupTestRepo(t)
	runGit(t, repoDir, "checkout", "--detach")

	_, err := Repo{Dir: repoDir}.CurrentBranch()
	if !errors.Is(err, ErrDetachedHead) {
		t.Errorf("expected ErrDetachedHead, got %v", err)
	}
}
