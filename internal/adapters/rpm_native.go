package adapters

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/rpmpack"

	"acopack/internal/core"
	"acopack/internal/ports"
)

// RPMNativeAdapter writes the artifact in-process.  Emission is
// deterministic: files are added in walk order (lexical), every mtime
// and the package build time are pinned to the source commit time, and
// ownership is fixed, so rebuilding the same (tag, commit) yields a
// byte-identical artifact.
type RPMNativeAdapter struct{}

func NewRPMNativeAdapter() RPMNativeAdapter {
	return RPMNativeAdapter{}
}

func (a RPMNativeAdapter) Emit(_ context.Context, req ports.EmitRequest) (ports.EmitResult, error) {
	var requires rpmpack.Relations
	for _, entry := range req.Requires {
		if err := requires.Set(entry); err != nil {
			return ports.EmitResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid requires entry").
				WithCause(err)
		}
	}
	rpm, err := rpmpack.NewRPM(rpmpack.RPMMetaData{
		Name:        req.Package,
		Summary:     req.Summary,
		Description: req.Description,
		Version:     req.Version,
		Release:     req.Release,
		Arch:        core.ArtifactArch,
		Licence:     req.License,
		URL:         req.URL,
		BuildTime:   req.SourceTime,
		Requires:    requires,
	})
	if err != nil {
		return ports.EmitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to initialize rpm writer").
			WithCause(err)
	}

	mtime := uint32(req.SourceTime.Unix())
	err = filepath.WalkDir(req.BuildRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(req.BuildRoot, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		installPath := "/" + filepath.ToSlash(rel)
		// The package owns exactly the prefix subtree; parent
		// directories like /usr/lib belong to the base system.
		if installPath != req.Prefix && !strings.HasPrefix(installPath, req.Prefix+"/") {
			return nil
		}
		if d.IsDir() {
			rpm.AddFile(rpmpack.RPMFile{
				Name:  installPath,
				Mode:  0o40755,
				Owner: "root",
				Group: "root",
				MTime: mtime,
			})
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rpm.AddFile(rpmpack.RPMFile{
			Name:  installPath,
			Body:  body,
			Mode:  uint(info.Mode().Perm()),
			Owner: "root",
			Group: "root",
			MTime: mtime,
		})
		return nil
	})
	if err != nil {
		return ports.EmitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to collect payload files").
			WithCause(err)
	}

	artifactPath := filepath.Join(req.OutputDir, core.ArtifactFileName(req.Package, req.Version, req.Release))
	out, err := os.Create(artifactPath)
	if err != nil {
		return ports.EmitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create artifact file").
			WithCause(err)
	}
	defer out.Close()
	if err := rpm.Write(out); err != nil {
		return ports.EmitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write rpm artifact").
			WithCause(err)
	}
	return ports.EmitResult{ArtifactPath: artifactPath}, nil
}

var _ ports.ArtifactEmitterPort = RPMNativeAdapter{}
