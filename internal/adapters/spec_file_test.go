package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acopack/internal/types"
)

const sampleSpecYAML = `package: aco-scripts
repo: https://example.com/aco-scripts.git
summary: ACO book-scan processing scripts
license: MIT
url: https://example.com/aco-scripts
prefix: /usr/lib/aco-scripts
requires: [python3]
dist: .el9
python: /usr/bin/python3
on_unresolved: fail
emitter: native
`

func TestLoadSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acopack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSpecYAML), 0o644))

	loader := NewPackageSpecAdapter()
	spec, err := loader.LoadSpec(path)
	require.NoError(t, err)

	expected := types.PackageSpec{
		Package:      "aco-scripts",
		Repo:         "https://example.com/aco-scripts.git",
		Summary:      "ACO book-scan processing scripts",
		License:      "MIT",
		URL:          "https://example.com/aco-scripts",
		Prefix:       "/usr/lib/aco-scripts",
		Requires:     []string{"python3"},
		Dist:         ".el9",
		Python:       "/usr/bin/python3",
		OnUnresolved: types.UnresolvedFail,
		Emitter:      types.EmitterNative,
	}
	if diff := cmp.Diff(expected, spec); diff != "" {
		t.Fatalf("unexpected spec (-want +got):\n%s", diff)
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	loader := NewPackageSpecAdapter()
	_, err := loader.LoadSpec(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestLoadSpecMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acopack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: [unterminated\n"), 0o644))

	loader := NewPackageSpecAdapter()
	_, err := loader.LoadSpec(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
