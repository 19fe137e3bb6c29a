package ports

import (
	"context"

	"acopack/internal/types"
)

// TagResolverPort answers questions about the remote's advertised
// references without fetching any objects.
type TagResolverPort interface {
	// ResolveTag returns the full commit hash refs/tags/<tag> points
	// at.  Annotated tags resolve to the peeled commit, not the tag
	// object.  A tag the remote does not advertise is a not-found
	// error.
	ResolveTag(ctx context.Context, repoURL string, tag string) (string, error)

	// ListTags returns every tag the remote advertises, one entry per
	// tag name.
	ListTags(ctx context.Context, repoURL string) ([]types.RemoteTag, error)
}
