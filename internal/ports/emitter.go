package ports

import (
	"context"
	"time"
)

// EmitRequest carries everything an emitter backend needs to turn a
// verified build root into an installable artifact.
type EmitRequest struct {
	Package     string
	Version     string
	Release     string
	Summary     string
	Description string
	License     string
	URL         string
	Requires    []string

	Tag         string
	ShortCommit string
	Dist        string

	BuildRoot string
	Prefix    string
	OutputDir string

	// SourceTime pins file mtimes and the artifact build time so that
	// repeated builds of the same commit are byte-identical.
	SourceTime time.Time
}

type EmitResult struct {
	ArtifactPath string
}

type ArtifactEmitterPort interface {
	Emit(ctx context.Context, req EmitRequest) (EmitResult, error)
}
