package adapters

import (
	"encoding/json"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"acopack/internal/ports"
	"acopack/internal/types"
)

type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) WriteManifest(path string, manifest types.BuildManifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode build manifest").
			WithCause(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write build manifest").
			WithCause(err)
	}
	return nil
}

func (a ManifestFileAdapter) ReadManifest(path string) (types.BuildManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.BuildManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("build manifest not found").
			WithCause(err)
	}
	var manifest types.BuildManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return types.BuildManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse build manifest").
			WithCause(err)
	}
	return manifest, nil
}

var _ ports.ManifestPort = ManifestFileAdapter{}
