package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"

	"acopack/internal/ports"
	"acopack/internal/types"
)

// peeledSuffix marks the dereferenced entry a remote advertises next to
// an annotated tag.
const peeledSuffix = "^{}"

type GitRemoteAdapter struct{}

func NewGitRemoteAdapter() GitRemoteAdapter {
	return GitRemoteAdapter{}
}

func (a GitRemoteAdapter) ResolveTag(ctx context.Context, repoURL string, tag string) (string, error) {
	refs, err := a.listRefs(ctx, repoURL)
	if err != nil {
		return "", err
	}
	tagRef := plumbing.NewTagReferenceName(tag).String()
	var tagHash, peeledHash string
	for _, ref := range refs {
		switch ref.Name().String() {
		case tagRef:
			tagHash = ref.Hash().String()
		case tagRef + peeledSuffix:
			peeledHash = ref.Hash().String()
		}
	}
	// Annotated tags advertise both the tag object and its peeled
	// commit; the commit is what identifies the source state.
	if peeledHash != "" {
		return peeledHash, nil
	}
	if tagHash != "" {
		return tagHash, nil
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("tag not found: %s", tag))
}

func (a GitRemoteAdapter) ListTags(ctx context.Context, repoURL string) ([]types.RemoteTag, error) {
	refs, err := a.listRefs(ctx, repoURL)
	if err != nil {
		return nil, err
	}
	var order []string
	hashes := map[string]string{}
	peeled := map[string]string{}
	for _, ref := range refs {
		name := ref.Name().String()
		if trimmed, ok := strings.CutSuffix(name, peeledSuffix); ok {
			base := plumbing.ReferenceName(trimmed)
			if base.IsTag() {
				peeled[base.Short()] = ref.Hash().String()
			}
			continue
		}
		if !ref.Name().IsTag() {
			continue
		}
		short := ref.Name().Short()
		order = append(order, short)
		hashes[short] = ref.Hash().String()
	}
	tags := make([]types.RemoteTag, 0, len(order))
	for _, name := range order {
		hash := hashes[name]
		if commit, ok := peeled[name]; ok {
			hash = commit
		}
		tags = append(tags, types.RemoteTag{Name: name, Hash: hash})
	}
	return tags, nil
}

func (a GitRemoteAdapter) listRefs(ctx context.Context, repoURL string) ([]*plumbing.Reference, error) {
	remote := git.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: "origin",
		URLs: []string{repoURL},
	})
	refs, err := remote.ListContext(ctx, &git.ListOptions{PeelingOption: git.AppendPeeled})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to list remote references").
			WithCause(err)
	}
	return refs, nil
}

var _ ports.TagResolverPort = GitRemoteAdapter{}
