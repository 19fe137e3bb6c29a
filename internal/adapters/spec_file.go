package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"acopack/internal/ports"
	"acopack/internal/types"
)

type PackageSpecAdapter struct{}

func NewPackageSpecAdapter() PackageSpecAdapter {
	return PackageSpecAdapter{}
}

func (a PackageSpecAdapter) LoadSpec(path string) (types.PackageSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PackageSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("spec file not found").
			WithCause(err)
	}
	var spec types.PackageSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return types.PackageSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse spec yaml").
			WithCause(err)
	}
	return spec, nil
}

var _ ports.PackageSpecPort = PackageSpecAdapter{}
