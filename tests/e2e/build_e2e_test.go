package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acopack/tests/testutil"
)

func runAcopack(t *testing.T, root string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "./cmd/acopack"}, args...)...)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestResolveCommandE2E(t *testing.T) {
	testutil.RequireGit(t)
	root := testutil.RepoRoot(t)

	upstream := t.TempDir()
	hash := testutil.UpstreamFixture(t, upstream, "v0.1")

	out, err := runAcopack(t, root, "resolve", "v0.1",
		"--repo", upstream,
	)
	require.NoError(t, err, out)

	assert.Contains(t, out, "tag: v0.1")
	assert.Contains(t, out, "version: 0.1")
	assert.Contains(t, out, "commit: "+hash.String()[:7])
}

func TestBuildCommandE2E(t *testing.T) {
	testutil.RequireGit(t)
	python := testutil.RequirePython(t)
	root := testutil.RepoRoot(t)

	upstream := t.TempDir()
	hash := testutil.UpstreamFixture(t, upstream, "v0.1")
	outDir := t.TempDir()

	out, err := runAcopack(t, root, "build", "v0.1",
		"--repo", upstream,
		"--package", "aco-scripts",
		"--output", outDir,
		"--python", python,
	)
	require.NoError(t, err, out)

	short := hash.String()[:7]
	artifact := filepath.Join(outDir, "aco-scripts-0.1-1.git"+short+".noarch.rpm")
	require.FileExists(t, artifact)
	require.FileExists(t, filepath.Join(outDir, "aco-scripts-0.1-1.git"+short+".noarch.manifest.json"))
	assert.Contains(t, out, "release: 1.git"+short)

	// The quality gate: a tree with a syntax error must not produce an
	// artifact.
	broken := t.TempDir()
	repo := testutil.InitUpstreamRepo(t, broken)
	brokenHash := testutil.CommitFiles(t, repo, broken, map[string]string{
		"bad.py": "def broken(:\n",
	}, "broken import")
	testutil.TagLightweight(t, repo, "v0.2", brokenHash)
	brokenOut := t.TempDir()

	out, err = runAcopack(t, root, "build", "v0.2",
		"--repo", broken,
		"--package", "aco-scripts",
		"--output", brokenOut,
		"--python", python,
	)
	require.Error(t, err, out)
	assert.Contains(t, out, "bad.py")

	entries, readErr := os.ReadDir(brokenOut)
	require.NoError(t, readErr)
	for _, entry := range entries {
		assert.False(t, strings.HasSuffix(entry.Name(), ".rpm"),
			"no artifact may be emitted after verification failure")
	}
}

func TestValidateCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	out, err := runAcopack(t, root, "validate",
		"--spec", "fixtures/acopack.yaml",
	)
	require.NoError(t, err, out)
	assert.Contains(t, out, "validated: aco-scripts")
}
