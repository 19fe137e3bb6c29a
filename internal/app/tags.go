package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"acopack/internal/core"
	"acopack/internal/types"
)

func (s Service) Tags(ctx context.Context, req TagsRequest) (TagsResult, error) {
	spec, err := s.loadEffectiveSpec(req.SpecPath, types.PackageSpec{Repo: req.Repo})
	if err != nil {
		return TagsResult{}, err
	}
	if strings.TrimSpace(spec.Repo) == "" {
		return TagsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository url is required")
	}
	remote, err := s.Resolver.ListTags(ctx, spec.Repo)
	if err != nil {
		return TagsResult{}, err
	}
	hashes := make(map[string]string, len(remote))
	for _, tag := range remote {
		hashes[tag.Name] = tag.Hash
	}
	infos := core.DeriveTagInfos(remote)
	if req.Latest {
		latest, err := core.LatestTag(infos)
		if err != nil {
			return TagsResult{}, err
		}
		infos = []core.TagInfo{latest}
	} else {
		infos = core.SortTagInfos(infos)
	}
	entries := make([]TagEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, TagEntry{
			Tag:         info.Tag,
			Version:     info.Version,
			ShortCommit: core.ShortCommit(hashes[info.Tag]),
		})
	}
	return TagsResult{Entries: entries}, nil
}
