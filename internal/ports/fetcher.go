package ports

import (
	"context"

	"acopack/internal/types"
)

type SourceFetcherPort interface {
	// CloneAtTag clones the repository into dest and checks out the
	// tag's commit detached.  Any failure is fatal to the build; there
	// are no retries and no partial results.
	CloneAtTag(ctx context.Context, repoURL string, tag string, dest string) (types.CloneInfo, error)
}
