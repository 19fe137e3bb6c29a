package app

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acopack/internal/types"
)

func writeManifest(t *testing.T, s Service, dir string, manifest types.BuildManifest) {
	t.Helper()
	name := manifest.Artifact[:len(manifest.Artifact)-len(".rpm")] + manifestSuffix
	require.NoError(t, s.Manifest.WriteManifest(filepath.Join(dir, name), manifest))
}

func TestInspectSummarizesManifests(t *testing.T) {
	s := testService(nil, nil, nil, nil)
	dir := t.TempDir()
	writeManifest(t, s, dir, types.BuildManifest{
		Package:     "aco-scripts",
		Version:     "0.2",
		Release:     "1.git8f14e45",
		Tag:         "v0.2",
		ShortCommit: "8f14e45",
		Artifact:    "aco-scripts-0.2-1.git8f14e45.noarch.rpm",
		Prefix:      "/usr/lib/aco-scripts",
		ScriptCount: 2,
		Files: []types.ManifestFile{
			{Path: "/usr/lib/aco-scripts/process_batch.py", Mode: "0755"},
			{Path: "/usr/lib/aco-scripts/README.md", Mode: "0644"},
		},
	})
	writeManifest(t, s, dir, types.BuildManifest{
		Package:  "aco-scripts",
		Version:  "0.1",
		Release:  "1.gitaaaaaaa",
		Tag:      "v0.1",
		Artifact: "aco-scripts-0.1-1.gitaaaaaaa.noarch.rpm",
		Prefix:   "/usr/lib/aco-scripts",
	})

	result, err := s.Inspect(InspectRequest{OutputDir: dir})
	require.NoError(t, err)
	require.Len(t, result.Artifacts, 2)

	// Glob order is lexical, so 0.1 comes first.
	assert.Equal(t, "0.1", result.Artifacts[0].Version)
	latest := result.Artifacts[1]
	assert.Equal(t, "aco-scripts", latest.Package)
	assert.Equal(t, "1.git8f14e45", latest.Release)
	assert.Equal(t, "v0.2", latest.Tag)
	assert.Equal(t, 2, latest.FileCount)
	assert.Equal(t, 2, latest.ScriptCount)
}

func TestInspectEmptyOutputDirectory(t *testing.T) {
	s := testService(nil, nil, nil, nil)

	_, err := s.Inspect(InspectRequest{OutputDir: t.TempDir()})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestInspectRequiresOutputDirectory(t *testing.T) {
	s := testService(nil, nil, nil, nil)

	_, err := s.Inspect(InspectRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
