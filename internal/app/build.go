package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"acopack/internal/core"
	"acopack/internal/ports"
	"acopack/internal/types"
)

// Build runs the linear pipeline: resolve, fetch, stage, verify, clean,
// emit, manifest.  No error is caught and retried; the first failure
// propagates to the caller.
func (s Service) Build(ctx context.Context, req BuildRequest) (BuildResult, error) {
	tag := strings.TrimSpace(req.Tag)
	if tag == "" {
		return BuildResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("release tag argument is required")
	}
	spec, err := s.loadEffectiveSpec(req.SpecPath, types.PackageSpec{
		Package:      req.Package,
		Repo:         req.Repo,
		Summary:      req.Summary,
		License:      req.License,
		URL:          req.URL,
		Prefix:       req.Prefix,
		Requires:     req.Requires,
		Dist:         req.Dist,
		Python:       req.Python,
		OnUnresolved: req.OnUnresolved,
		Emitter:      req.Emitter,
	})
	if err != nil {
		return BuildResult{}, err
	}
	checker := core.NewSpecChecker()
	if err := checker.ValidateSpec(ctx, spec); err != nil {
		return BuildResult{}, err
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return BuildResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	emitter, err := s.NewEmitter(spec.Emitter)
	if err != nil {
		return BuildResult{}, err
	}

	release, err := s.resolveRelease(ctx, spec.Repo, tag, spec.OnUnresolved)
	if err != nil {
		return BuildResult{}, err
	}
	releaseNumber := core.ReleaseNumber(release.ShortCommit, spec.Dist)
	buildID := uuid.NewString()
	log.Info().
		Str("build_id", buildID).
		Str("package", spec.Package).
		Str("version", release.Version).
		Str("release", releaseNumber).
		Msg("starting build")

	workspace, err := s.Workspace.Acquire(spec.Package, release.Version, req.KeepWork)
	if err != nil {
		return BuildResult{}, err
	}
	defer func() {
		if err := workspace.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to clean workspace")
		}
	}()

	clone, err := s.Fetcher.CloneAtTag(ctx, spec.Repo, release.Tag, workspace.SourceDir())
	if err != nil {
		return BuildResult{}, err
	}
	if !release.Placeholder && clone.Head != release.Commit {
		// Mutable-tag hazard: the tag moved between resolution and
		// clone.  Metadata keeps the resolve-time commit.
		log.Warn().
			Str("resolved", release.Commit).
			Str("fetched", clone.Head).
			Msg("tag moved upstream between resolve and fetch")
	}
	sourceTime := clone.CommitTime
	if sourceTime.IsZero() {
		sourceTime = time.Unix(0, 0).UTC()
	}

	stage, err := s.Stager.Stage(workspace.SourceDir(), workspace.BuildRoot(), spec.Prefix)
	if err != nil {
		return BuildResult{}, err
	}
	log.Info().
		Int("files", stage.FileCount).
		Int("scripts", stage.ScriptCount).
		Str("prefix", spec.Prefix).
		Msg("staged payload tree")

	verifier := s.NewVerifier(spec.Python)
	verify, err := verifier.VerifyTree(ctx, stage.Root)
	if err != nil {
		return BuildResult{}, err
	}
	if err := verifier.CleanArtifacts(stage.Root); err != nil {
		return BuildResult{}, err
	}
	log.Info().Int("checked", verify.Checked).Msg("verified scripts")

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return BuildResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	emitted, err := emitter.Emit(ctx, ports.EmitRequest{
		Package:     spec.Package,
		Version:     release.Version,
		Release:     releaseNumber,
		Summary:     spec.Summary,
		Description: buildDescription(spec, release),
		License:     spec.License,
		URL:         spec.URL,
		Requires:    spec.Requires,
		Tag:         release.Tag,
		ShortCommit: release.ShortCommit,
		Dist:        spec.Dist,
		BuildRoot:   workspace.BuildRoot(),
		Prefix:      spec.Prefix,
		OutputDir:   outputDir,
		SourceTime:  sourceTime,
	})
	if err != nil {
		return BuildResult{}, err
	}

	files, err := collectManifestFiles(workspace.BuildRoot())
	if err != nil {
		return BuildResult{}, err
	}
	manifest := types.BuildManifest{
		Package:     spec.Package,
		Version:     release.Version,
		Release:     releaseNumber,
		Tag:         release.Tag,
		Commit:      release.Commit,
		ShortCommit: release.ShortCommit,
		BuildID:     buildID,
		CreatedAt:   timeNow(s.Clock).Format(time.RFC3339),
		Artifact:    filepath.Base(emitted.ArtifactPath),
		Prefix:      spec.Prefix,
		Requires:    spec.Requires,
		ScriptCount: verify.Checked,
		Files:       files,
	}
	manifestPath := strings.TrimSuffix(emitted.ArtifactPath, ".rpm") + ".manifest.json"
	if err := s.Manifest.WriteManifest(manifestPath, manifest); err != nil {
		return BuildResult{}, err
	}
	log.Info().
		Str("artifact", emitted.ArtifactPath).
		Str("manifest", manifestPath).
		Msg("build complete")

	return BuildResult{
		ArtifactPath: emitted.ArtifactPath,
		ManifestPath: manifestPath,
		Package:      spec.Package,
		Version:      release.Version,
		Release:      releaseNumber,
		ShortCommit:  release.ShortCommit,
		FileCount:    stage.FileCount,
		ScriptCount:  verify.Checked,
	}, nil
}

func buildDescription(spec types.PackageSpec, release types.ResolvedRelease) string {
	return fmt.Sprintf("%s packaged from tag %s (commit %s).",
		spec.Package, release.Tag, release.ShortCommit)
}

// collectManifestFiles digests every staged file.  Paths are recorded as
// install paths, so they all live under the package prefix.
func collectManifestFiles(buildRoot string) ([]types.ManifestFile, error) {
	var files []types.ManifestFile
	err := filepath.WalkDir(buildRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		digest, err := digestFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(buildRoot, path)
		if err != nil {
			return err
		}
		files = append(files, types.ManifestFile{
			Path:   "/" + filepath.ToSlash(rel),
			Mode:   fmt.Sprintf("%04o", info.Mode().Perm()),
			Size:   info.Size(),
			SHA256: digest,
		})
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to digest staged files").
			WithCause(err)
	}
	return files, nil
}

func digestFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
