package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"acopack/internal/adapters"
	"acopack/internal/core"
	"acopack/internal/ports"
	"acopack/internal/types"
)

var fixtureTime = time.Date(2024, 5, 14, 10, 30, 0, 0, time.UTC)

type fakeResolver struct {
	tags  map[string]string
	calls int
}

func (f *fakeResolver) ResolveTag(_ context.Context, _ string, tag string) (string, error) {
	f.calls++
	if commit, ok := f.tags[tag]; ok {
		return commit, nil
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("tag not found: %s", tag))
}

func (f *fakeResolver) ListTags(_ context.Context, _ string) ([]types.RemoteTag, error) {
	f.calls++
	var tags []types.RemoteTag
	for name, hash := range f.tags {
		tags = append(tags, types.RemoteTag{Name: name, Hash: hash})
	}
	return tags, nil
}

type fakeFetcher struct {
	files map[string]string
	head  string
	when  time.Time
	err   error
	calls int
}

func (f *fakeFetcher) CloneAtTag(_ context.Context, _ string, _ string, dest string) (types.CloneInfo, error) {
	f.calls++
	if f.err != nil {
		return types.CloneInfo{}, f.err
	}
	for name, content := range f.files {
		path := filepath.Join(dest, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return types.CloneInfo{}, err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return types.CloneInfo{}, err
		}
	}
	return types.CloneInfo{Path: dest, Head: f.head, CommitTime: f.when}, nil
}

type fakeVerifier struct {
	err     error
	checked int
	cleaned int
}

func (f *fakeVerifier) VerifyTree(_ context.Context, root string) (types.VerifyReport, error) {
	if f.err != nil {
		return types.VerifyReport{}, f.err
	}
	count := 0
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() && filepath.Ext(path) == ".py" {
			count++
		}
		return nil
	})
	f.checked = count
	return types.VerifyReport{Checked: count}, nil
}

func (f *fakeVerifier) CleanArtifacts(string) error {
	f.cleaned++
	return nil
}

type fakeEmitter struct {
	err   error
	calls int
}

func (f *fakeEmitter) Emit(_ context.Context, req ports.EmitRequest) (ports.EmitResult, error) {
	f.calls++
	if f.err != nil {
		return ports.EmitResult{}, f.err
	}
	path := filepath.Join(req.OutputDir, core.ArtifactFileName(req.Package, req.Version, req.Release))
	if err := os.WriteFile(path, []byte("rpm"), 0o644); err != nil {
		return ports.EmitResult{}, err
	}
	return ports.EmitResult{ArtifactPath: path}, nil
}

func testService(resolver ports.TagResolverPort, fetcher ports.SourceFetcherPort, verifier ports.ScriptVerifierPort, emitter ports.ArtifactEmitterPort) Service {
	return Service{
		SpecLoader: adapters.NewPackageSpecAdapter(),
		Resolver:   resolver,
		Fetcher:    fetcher,
		Workspace:  adapters.NewBuildWorkspaceAdapter(),
		Stager:     adapters.NewTreeStagerAdapter(),
		Manifest:   adapters.NewManifestFileAdapter(),
		NewVerifier: func(string) ports.ScriptVerifierPort {
			return verifier
		},
		NewEmitter: func(types.EmitterKind) (ports.ArtifactEmitterPort, error) {
			return emitter, nil
		},
		Clock: func() time.Time { return fixtureTime },
	}
}
