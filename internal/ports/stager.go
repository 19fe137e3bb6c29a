package ports

import "acopack/internal/types"

type TreeStagerPort interface {
	// Stage copies the source tree into buildRoot under prefix,
	// excluding version-control metadata and normalizing permissions.
	// The destination is recreated from scratch on every call.
	Stage(srcDir string, buildRoot string, prefix string) (types.StageReport, error)
}
