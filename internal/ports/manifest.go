package ports

import "acopack/internal/types"

type ManifestPort interface {
	WriteManifest(path string, manifest types.BuildManifest) error
	ReadManifest(path string) (types.BuildManifest, error)
}
