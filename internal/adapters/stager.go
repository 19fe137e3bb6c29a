package adapters

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"acopack/internal/policies"
	"acopack/internal/ports"
	"acopack/internal/types"
)

type TreeStagerAdapter struct {
	policy policies.StagePolicy
}

func NewTreeStagerAdapter() TreeStagerAdapter {
	return TreeStagerAdapter{policy: policies.NewStagePolicy()}
}

// Stage copies the snapshot into buildRoot under prefix.  Version
// control metadata never reaches the payload, and every file's mode is
// set by classification: upstream permission bits are not trusted.
func (a TreeStagerAdapter) Stage(srcDir string, buildRoot string, prefix string) (types.StageReport, error) {
	dest := filepath.Join(buildRoot, prefix)
	if err := os.RemoveAll(buildRoot); err != nil {
		return types.StageReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to reset build root").
			WithCause(err)
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return types.StageReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create staging prefix").
			WithCause(err)
	}

	report := types.StageReport{Root: dest}
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			if a.policy.SkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return os.MkdirAll(filepath.Join(dest, rel), 0o755)
		}
		if a.policy.SkipFile(d.Name()) {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		mode := a.policy.FileMode(path)
		if err := os.WriteFile(filepath.Join(dest, rel), data, mode); err != nil {
			return err
		}
		// WriteFile honors the umask and leaves an existing file's
		// mode alone, so the policy mode is applied explicitly.
		if err := os.Chmod(filepath.Join(dest, rel), mode); err != nil {
			return err
		}
		report.FileCount++
		if a.policy.IsScript(path) {
			report.ScriptCount++
		}
		return nil
	})
	if err != nil {
		return types.StageReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stage source tree").
			WithCause(err)
	}
	return report, nil
}

var _ ports.TreeStagerPort = TreeStagerAdapter{}
