package adapters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"acopack/internal/ports"
)

type BuildWorkspaceAdapter struct{}

func NewBuildWorkspaceAdapter() BuildWorkspaceAdapter {
	return BuildWorkspaceAdapter{}
}

// Acquire creates a scoped scratch root for one build invocation.  The
// source and buildroot directories are recreated from scratch even
// inside the fresh root, so a rerun after a kept workspace behaves the
// same as a first run.
func (a BuildWorkspaceAdapter) Acquire(pkg string, version string, keep bool) (ports.BuildWorkspace, error) {
	root, err := os.MkdirTemp("", fmt.Sprintf("acopack-%s-", pkg))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create workspace").
			WithCause(err)
	}
	sourceDir := filepath.Join(root, fmt.Sprintf("%s-%s", pkg, version))
	buildRoot := filepath.Join(root, "buildroot")
	for _, dir := range []string{sourceDir, buildRoot} {
		if err := os.RemoveAll(dir); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to reset workspace directory").
				WithCause(err)
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create workspace directory").
				WithCause(err)
		}
	}
	return buildWorkspace{
		root:      root,
		sourceDir: sourceDir,
		buildRoot: buildRoot,
		keep:      keep,
	}, nil
}

type buildWorkspace struct {
	root      string
	sourceDir string
	buildRoot string
	keep      bool
}

func (w buildWorkspace) Root() string      { return w.root }
func (w buildWorkspace) SourceDir() string { return w.sourceDir }
func (w buildWorkspace) BuildRoot() string { return w.buildRoot }

func (w buildWorkspace) Close() error {
	if w.keep {
		return nil
	}
	return os.RemoveAll(w.root)
}

var _ ports.BuildWorkspacePort = BuildWorkspaceAdapter{}
