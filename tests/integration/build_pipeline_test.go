package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acopack/internal/app"
	"acopack/tests/testutil"
)

// The full pipeline with real adapters: resolve against a local remote,
// clone, stage, verify with the host interpreter, and emit natively.
func TestBuildPipelineDeterministic(t *testing.T) {
	testutil.RequireGit(t)
	python := testutil.RequirePython(t)

	ctx := t.Context()
	upstream := t.TempDir()
	hash := testutil.UpstreamFixture(t, upstream, "v0.1")

	service := app.NewService()
	request := app.BuildRequest{
		Tag:     "v0.1",
		Repo:    upstream,
		Package: "aco-scripts",
		Python:  python,
	}

	request.OutputDir = t.TempDir()
	first, err := service.Build(ctx, request)
	require.NoError(t, err)

	request.OutputDir = t.TempDir()
	second, err := service.Build(ctx, request)
	require.NoError(t, err)

	short := hash.String()[:7]
	assert.Equal(t, "aco-scripts-0.1-1.git"+short+".noarch.rpm", filepath.Base(first.ArtifactPath))
	assert.Equal(t, "0.1", first.Version)
	assert.Equal(t, 2, first.ScriptCount)

	// Same commit in, same bytes out.
	bytesA, err := os.ReadFile(first.ArtifactPath)
	require.NoError(t, err)
	bytesB, err := os.ReadFile(second.ArtifactPath)
	require.NoError(t, err)
	assert.Equal(t, bytesA, bytesB)

	manifestA, err := service.Manifest.ReadManifest(first.ManifestPath)
	require.NoError(t, err)
	manifestB, err := service.Manifest.ReadManifest(second.ManifestPath)
	require.NoError(t, err)
	assert.Equal(t, manifestA.Files, manifestB.Files)
	assert.Equal(t, hash.String(), manifestA.Commit)
}

func TestBuildPipelineRejectsBrokenScripts(t *testing.T) {
	testutil.RequireGit(t)
	python := testutil.RequirePython(t)

	ctx := t.Context()
	upstream := t.TempDir()
	repo := testutil.InitUpstreamRepo(t, upstream)
	hash := testutil.CommitFiles(t, repo, upstream, map[string]string{
		"good.py": "VALUE = 1\n",
		"bad.py":  "def broken(:\n",
	}, "mixed tree")
	testutil.TagLightweight(t, repo, "v0.2", hash)

	service := app.NewService()
	outputDir := filepath.Join(t.TempDir(), "out")
	_, err := service.Build(ctx, app.BuildRequest{
		Tag:       "v0.2",
		Repo:      upstream,
		Package:   "aco-scripts",
		OutputDir: outputDir,
		Python:    python,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.py")
	assert.NoDirExists(t, outputDir)
}
