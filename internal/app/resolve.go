package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"acopack/internal/core"
	"acopack/internal/types"
)

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	tag := strings.TrimSpace(req.Tag)
	if tag == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("release tag argument is required")
	}
	spec, err := s.loadEffectiveSpec(req.SpecPath, types.PackageSpec{
		Repo:         req.Repo,
		OnUnresolved: req.OnUnresolved,
	})
	if err != nil {
		return ResolveResult{}, err
	}
	if strings.TrimSpace(spec.Repo) == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository url is required")
	}

	release, err := s.resolveRelease(ctx, spec.Repo, tag, spec.OnUnresolved)
	if err != nil {
		return ResolveResult{}, err
	}
	return ResolveResult{
		Repo:        spec.Repo,
		Tag:         release.Tag,
		Version:     release.Version,
		Commit:      release.Commit,
		ShortCommit: release.ShortCommit,
		Placeholder: release.Placeholder,
	}, nil
}

// resolveRelease performs the read-only remote query and version
// derivation shared by resolve and build.  The tag must already be
// validated non-empty; nothing here touches the filesystem.
func (s Service) resolveRelease(ctx context.Context, repoURL string, tag string, policy types.UnresolvedPolicy) (types.ResolvedRelease, error) {
	version := core.DeriveVersion(tag)
	if err := core.ValidateVersion(version); err != nil {
		return types.ResolvedRelease{}, err
	}
	log.Info().
		Str("repository", repoURL).
		Str("tag", tag).
		Msg("resolving release tag")

	commit, err := s.Resolver.ResolveTag(ctx, repoURL, tag)
	if err != nil {
		if errbuilder.CodeOf(err) == errbuilder.CodeNotFound && policy == types.UnresolvedPlaceholder {
			log.Warn().
				Str("tag", tag).
				Msg("tag not found on remote, proceeding with placeholder commit")
			return types.ResolvedRelease{
				Tag:         tag,
				Version:     version,
				Commit:      core.PlaceholderCommit,
				ShortCommit: core.PlaceholderCommit,
				Placeholder: true,
			}, nil
		}
		return types.ResolvedRelease{}, err
	}
	short := core.ShortCommit(commit)
	log.Info().
		Str("tag", tag).
		Str("commit", short).
		Str("version", version).
		Msg("resolved release tag")
	return types.ResolvedRelease{
		Tag:         tag,
		Version:     version,
		Commit:      commit,
		ShortCommit: short,
	}, nil
}
