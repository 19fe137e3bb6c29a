package app

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const manifestSuffix = ".manifest.json"

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	paths, err := filepath.Glob(filepath.Join(outputDir, "*"+manifestSuffix))
	if err != nil {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan output directory").
			WithCause(err)
	}
	if len(paths) == 0 {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no build manifests found in output directory")
	}
	sort.Strings(paths)

	var summaries []InspectArtifactSummary
	for _, path := range paths {
		manifest, err := s.Manifest.ReadManifest(path)
		if err != nil {
			return InspectResult{}, err
		}
		summaries = append(summaries, InspectArtifactSummary{
			Package:     manifest.Package,
			Version:     manifest.Version,
			Release:     manifest.Release,
			Tag:         manifest.Tag,
			ShortCommit: manifest.ShortCommit,
			Artifact:    manifest.Artifact,
			Prefix:      manifest.Prefix,
			FileCount:   len(manifest.Files),
			ScriptCount: manifest.ScriptCount,
		})
	}
	return InspectResult{Artifacts: summaries}, nil
}
