// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// RequireGit skips the test when no git binaries are available. go-git's
// file transport shells out to git-upload-pack (resolved through
// `git --exec-path` when not on PATH), so local-path remotes need one of
// the two binaries present.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git-upload-pack"); err == nil {
		return
	}
	if _, err := exec.LookPath("git"); err == nil {
		return
	}
	t.Skip("git binaries not available for local-path remotes")
}

// RequirePython skips the test when no python3 interpreter is available.
func RequirePython(t *testing.T) string {
	t.Helper()
	python, err := exec.LookPath("python3")
	if err != nil {
		t.Skip("python3 not available")
	}
	return python
}

// FixtureSignature is the fixed author identity of fixture commits so
// repeated fixture builds stay reproducible.
func FixtureSignature() *object.Signature {
	return &object.Signature{
		Name:  "Fixture Author",
		Email: "fixture@example.com",
		When:  time.Date(2024, 5, 14, 10, 30, 0, 0, time.UTC),
	}
}

// InitUpstreamRepo initializes a git repository at dir.
func InitUpstreamRepo(t *testing.T, dir string) *git.Repository {
	t.Helper()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return repo
}

// CommitFiles writes the given files into the repository worktree and
// commits them, returning the commit hash.
func CommitFiles(t *testing.T, repo *git.Repository, dir string, files map[string]string, message string) plumbing.Hash {
	t.Helper()
	worktree, err := repo.Worktree()
	require.NoError(t, err)
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := worktree.Add(name)
		require.NoError(t, err)
	}
	hash, err := worktree.Commit(message, &git.CommitOptions{Author: FixtureSignature()})
	require.NoError(t, err)
	return hash
}

// TagLightweight creates a lightweight tag pointing at the commit.
func TagLightweight(t *testing.T, repo *git.Repository, name string, hash plumbing.Hash) {
	t.Helper()
	_, err := repo.CreateTag(name, hash, nil)
	require.NoError(t, err)
}

// TagAnnotated creates an annotated tag object pointing at the commit.
func TagAnnotated(t *testing.T, repo *git.Repository, name string, hash plumbing.Hash) {
	t.Helper()
	_, err := repo.CreateTag(name, hash, &git.CreateTagOptions{
		Tagger:  FixtureSignature(),
		Message: "release " + name,
	})
	require.NoError(t, err)
}

// UpstreamFixture builds a small upstream repository with one valid
// Python tree committed and tagged, returning the commit hash.
func UpstreamFixture(t *testing.T, dir string, tag string) plumbing.Hash {
	t.Helper()
	repo := InitUpstreamRepo(t, dir)
	hash := CommitFiles(t, repo, dir, map[string]string{
		"process_batch.py": "import sys\n\n\ndef main():\n    return 0\n\n\nif __name__ == \"__main__\":\n    sys.exit(main())\n",
		"util.py":          "def double(value):\n    return value * 2\n",
		"README.md":        "batch processing scripts\n",
	}, "initial import")
	TagLightweight(t, repo, tag, hash)
	return hash
}
