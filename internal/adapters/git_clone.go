package adapters

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"acopack/internal/ports"
	"acopack/internal/types"
)

type GitCloneAdapter struct{}

func NewGitCloneAdapter() GitCloneAdapter {
	return GitCloneAdapter{}
}

// CloneAtTag clones the repository at the tag and leaves HEAD detached
// on the tag's commit.  The commit's committer timestamp is returned so
// emission can pin the artifact to the source state rather than the
// build wall clock.
func (a GitCloneAdapter) CloneAtTag(ctx context.Context, repoURL string, tag string, dest string) (types.CloneInfo, error) {
	repo, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:           repoURL,
		ReferenceName: plumbing.NewTagReferenceName(tag),
		SingleBranch:  true,
	})
	if err != nil {
		return types.CloneInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to clone repository at tag").
			WithCause(err)
	}
	head, err := repo.Head()
	if err != nil {
		return types.CloneInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read cloned HEAD").
			WithCause(err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return types.CloneInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open cloned worktree").
			WithCause(err)
	}
	// Re-checkout by hash detaches HEAD from the tag reference, so the
	// tree cannot follow a later force-move of the tag.
	if err := worktree.Checkout(&git.CheckoutOptions{Hash: head.Hash()}); err != nil {
		return types.CloneInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to check out tag commit").
			WithCause(err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return types.CloneInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read tag commit").
			WithCause(err)
	}
	return types.CloneInfo{
		Path:       dest,
		Head:       head.Hash().String(),
		CommitTime: commit.Committer.When.UTC(),
	}, nil
}

var _ ports.SourceFetcherPort = GitCloneAdapter{}
