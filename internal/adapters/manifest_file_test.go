package adapters

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acopack/internal/types"
)

func TestManifestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aco-scripts-0.3-1.git1a2b3c4.noarch.manifest.json")
	manifest := types.BuildManifest{
		Package:     "aco-scripts",
		Version:     "0.3",
		Release:     "1.git1a2b3c4",
		Tag:         "v0.3",
		Commit:      "1a2b3c4d5e6f7890aabbccddeeff001122334455",
		ShortCommit: "1a2b3c4",
		BuildID:     "4be0643f-1d98-573b-97cd-ca98a65347dd",
		CreatedAt:   "2024-05-14T10:30:00Z",
		Artifact:    "aco-scripts-0.3-1.git1a2b3c4.noarch.rpm",
		Prefix:      "/usr/lib/aco-scripts",
		Requires:    []string{"python3"},
		ScriptCount: 2,
		Files: []types.ManifestFile{
			{Path: "/usr/lib/aco-scripts/main.py", Mode: "0755", Size: 6, SHA256: "abc"},
		},
	}

	store := NewManifestFileAdapter()
	require.NoError(t, store.WriteManifest(path, manifest))
	loaded, err := store.ReadManifest(path)
	require.NoError(t, err)
	if diff := cmp.Diff(manifest, loaded); diff != "" {
		t.Fatalf("unexpected manifest (-want +got):\n%s", diff)
	}
}

func TestReadManifestMissing(t *testing.T) {
	store := NewManifestFileAdapter()
	_, err := store.ReadManifest(filepath.Join(t.TempDir(), "absent.manifest.json"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
