package adapters

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/hashicorp/go-multierror"

	"acopack/internal/policies"
	"acopack/internal/ports"
	"acopack/internal/shared"
	"acopack/internal/types"
)

// PyCompileAdapter parses every staged script with the target
// interpreter.  It is the one quality gate between staging and
// emission: a single parse failure aborts the build.
type PyCompileAdapter struct {
	python string
	policy policies.StagePolicy
}

func NewPyCompileAdapter(python string) PyCompileAdapter {
	return PyCompileAdapter{python: python, policy: policies.NewStagePolicy()}
}

func (a PyCompileAdapter) VerifyTree(ctx context.Context, root string) (types.VerifyReport, error) {
	var scripts []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if a.policy.IsScript(path) {
			scripts = append(scripts, path)
		}
		return nil
	})
	if err != nil {
		return types.VerifyReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan staged tree").
			WithCause(err)
	}

	var failures *multierror.Error
	var failed []string
	for _, script := range scripts {
		cmd := exec.CommandContext(ctx, a.python, "-m", "py_compile", script)
		output, err := cmd.CombinedOutput()
		if err != nil {
			rel, relErr := filepath.Rel(root, script)
			if relErr != nil {
				rel = script
			}
			failed = append(failed, rel)
			failures = multierror.Append(failures,
				fmt.Errorf("%s: %w", rel, shared.CommandError(output, err)))
		}
	}
	if err := failures.ErrorOrNil(); err != nil {
		return types.VerifyReport{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("script verification failed: %s", strings.Join(failed, ", "))).
			WithCause(err)
	}
	return types.VerifyReport{Checked: len(scripts)}, nil
}

// CleanArtifacts removes the byte-compilation residue the verification
// pass leaves behind.  The payload must ship without it.
func (a PyCompileAdapter) CleanArtifacts(root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == "__pycache__" {
			if err := os.RemoveAll(path); err != nil {
				return err
			}
			return filepath.SkipDir
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".pyc") {
			return os.Remove(path)
		}
		return nil
	})
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to clean interpreter cache artifacts").
			WithCause(err)
	}
	return nil
}

var _ ports.ScriptVerifierPort = PyCompileAdapter{}
