package policies

import (
	"io/fs"
	"path/filepath"
	"strings"
)

const (
	// ScriptMode is applied to every recognized script regardless of
	// its mode in the source tree.
	ScriptMode fs.FileMode = 0o755
	// DataMode is applied to everything that is not a script.
	DataMode fs.FileMode = 0o644
)

// StagePolicy decides which source entries reach the payload tree and
// which permissions they get there.  Staging normalizes, it never
// preserves: source permission bits are policy input only through the
// file's classification, not its mode.
type StagePolicy struct {
	scriptExts map[string]struct{}
	skipDirs   map[string]struct{}
	skipFiles  map[string]struct{}
}

func NewStagePolicy() StagePolicy {
	return StagePolicy{
		scriptExts: map[string]struct{}{
			".py": {},
		},
		skipDirs: map[string]struct{}{
			".git": {},
		},
		skipFiles: map[string]struct{}{
			".gitignore":     {},
			".gitattributes": {},
			".gitmodules":    {},
		},
	}
}

// IsScript reports whether the path names a file the target interpreter
// is expected to run.
func (p StagePolicy) IsScript(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := p.scriptExts[ext]
	return ok
}

// SkipDir reports whether a directory is version-control metadata that
// must never be staged.
func (p StagePolicy) SkipDir(name string) bool {
	_, ok := p.skipDirs[name]
	return ok
}

// SkipFile reports whether a file is version-control metadata.
func (p StagePolicy) SkipFile(name string) bool {
	_, ok := p.skipFiles[name]
	return ok
}

// FileMode returns the normalized payload mode for a path.
func (p StagePolicy) FileMode(path string) fs.FileMode {
	if p.IsScript(path) {
		return ScriptMode
	}
	return DataMode
}
