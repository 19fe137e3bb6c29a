package ports

import "acopack/internal/types"

type PackageSpecPort interface {
	LoadSpec(path string) (types.PackageSpec, error)
}
