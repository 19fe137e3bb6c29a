package app

import (
	"path"
	"strings"

	"acopack/internal/shared"
	"acopack/internal/types"
)

// defaultSpecFile is picked up from the working directory when no
// explicit spec path is given.
const defaultSpecFile = "acopack.yaml"

const (
	defaultPrefixRoot = "/usr/lib"
	defaultPython     = "/usr/bin/python3"
)

var defaultRequires = []string{"python3"}

// loadEffectiveSpec produces the single configuration the pipeline runs
// on: explicit flag values override spec file values, and whatever is
// still unset afterwards gets a default.  A missing spec file is only an
// error when the caller named one.
func (s Service) loadEffectiveSpec(specPath string, overlay types.PackageSpec) (types.PackageSpec, error) {
	spec := types.PackageSpec{}
	path := strings.TrimSpace(specPath)
	if path == "" && shared.FileExists(defaultSpecFile) {
		path = defaultSpecFile
	}
	if path != "" {
		loaded, err := s.SpecLoader.LoadSpec(path)
		if err != nil {
			return types.PackageSpec{}, err
		}
		spec = loaded
	}
	spec = applyOverlay(spec, overlay)
	return applySpecDefaults(spec), nil
}

func applyOverlay(spec types.PackageSpec, overlay types.PackageSpec) types.PackageSpec {
	merged := spec
	if overlay.Package != "" {
		merged.Package = overlay.Package
	}
	if overlay.Repo != "" {
		merged.Repo = overlay.Repo
	}
	if overlay.Summary != "" {
		merged.Summary = overlay.Summary
	}
	if overlay.License != "" {
		merged.License = overlay.License
	}
	if overlay.URL != "" {
		merged.URL = overlay.URL
	}
	if overlay.Prefix != "" {
		merged.Prefix = overlay.Prefix
	}
	if len(overlay.Requires) > 0 {
		merged.Requires = overlay.Requires
	}
	if overlay.Dist != "" {
		merged.Dist = overlay.Dist
	}
	if overlay.Python != "" {
		merged.Python = overlay.Python
	}
	if overlay.OnUnresolved != "" {
		merged.OnUnresolved = overlay.OnUnresolved
	}
	if overlay.Emitter != "" {
		merged.Emitter = overlay.Emitter
	}
	return merged
}

func applySpecDefaults(spec types.PackageSpec) types.PackageSpec {
	defaulted := spec
	if defaulted.Prefix == "" && defaulted.Package != "" {
		defaulted.Prefix = path.Join(defaultPrefixRoot, defaulted.Package)
	}
	if len(defaulted.Requires) == 0 {
		defaulted.Requires = append([]string(nil), defaultRequires...)
	}
	if defaulted.Python == "" {
		defaulted.Python = defaultPython
	}
	if defaulted.OnUnresolved == "" {
		defaulted.OnUnresolved = types.UnresolvedFail
	}
	if defaulted.Emitter == "" {
		defaulted.Emitter = types.EmitterNative
	}
	if defaulted.Summary == "" && defaulted.Package != "" {
		defaulted.Summary = defaulted.Package + " packaged from a tagged release"
	}
	return defaulted
}
