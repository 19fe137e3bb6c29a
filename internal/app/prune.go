package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"acopack/internal/core"
	"acopack/internal/shared"
	"acopack/internal/types"
)

func (s Service) PruneArtifacts(ctx context.Context, req PruneRequest) (PruneResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return PruneResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	artifacts, err := scanArtifacts(outputDir)
	if err != nil {
		return PruneResult{}, err
	}
	policy := types.ArtifactRetentionPolicy{
		KeepLast:        req.KeepLast,
		ProtectVersions: req.ProtectVersions,
		DryRun:          req.DryRun,
	}
	plan := BuildArtifactPrunePlan(artifacts, policy)
	if policy.DryRun {
		return PruneResult{
			KeepCount:   len(plan.Keep),
			DeleteCount: len(plan.Delete),
			DryRun:      true,
		}, nil
	}
	var deleted []string
	for _, artifact := range plan.Delete {
		if err := ctx.Err(); err != nil {
			return PruneResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("prune interrupted").
				WithCause(err)
		}
		if err := os.Remove(artifact.Path); err != nil {
			return PruneResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to delete artifact").
				WithCause(err)
		}
		// The manifest travels with its artifact.
		manifestPath := strings.TrimSuffix(artifact.Path, ".rpm") + manifestSuffix
		if shared.FileExists(manifestPath) {
			if err := os.Remove(manifestPath); err != nil {
				return PruneResult{}, errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("failed to delete manifest").
					WithCause(err)
			}
		}
		deleted = append(deleted, filepath.Base(artifact.Path))
	}
	return PruneResult{
		KeepCount:   len(plan.Keep),
		DeleteCount: len(deleted),
		Deleted:     deleted,
		DryRun:      false,
	}, nil
}

// scanArtifacts parses every *.rpm in the output directory back into
// its name parts.  Files acopack did not emit are left alone.
func scanArtifacts(outputDir string) ([]types.ArtifactInfo, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("output directory not found").
			WithCause(err)
	}
	var artifacts []types.ArtifactInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".rpm") {
			continue
		}
		info, err := core.ParseArtifactFileName(entry.Name())
		if err != nil {
			log.Debug().Str("file", entry.Name()).Msg("skipping unrecognized rpm file")
			continue
		}
		info.Path = filepath.Join(outputDir, entry.Name())
		artifacts = append(artifacts, info)
	}
	return artifacts, nil
}
