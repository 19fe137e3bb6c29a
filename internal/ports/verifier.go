package ports

import (
	"context"

	"acopack/internal/types"
)

// ScriptVerifierPort is the quality gate between staging and emission.
type ScriptVerifierPort interface {
	// VerifyTree parses every recognized script under root with the
	// target interpreter.  All failures are collected into one error;
	// any failure aborts the build.
	VerifyTree(ctx context.Context, root string) (types.VerifyReport, error)

	// CleanArtifacts removes interpreter cache residue that
	// verification leaves behind, so the payload tree ships without it.
	CleanArtifacts(root string) error
}
