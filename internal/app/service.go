package app

import (
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"acopack/internal/adapters"
	"acopack/internal/ports"
	"acopack/internal/types"
)

type Service struct {
	SpecLoader ports.PackageSpecPort
	Resolver   ports.TagResolverPort
	Fetcher    ports.SourceFetcherPort
	Workspace  ports.BuildWorkspacePort
	Stager     ports.TreeStagerPort
	Manifest   ports.ManifestPort

	// NewVerifier and NewEmitter are factories because the interpreter
	// path and emitter backend are per-invocation choices.
	NewVerifier func(python string) ports.ScriptVerifierPort
	NewEmitter  func(kind types.EmitterKind) (ports.ArtifactEmitterPort, error)

	Clock func() time.Time
}

func NewService() Service {
	return Service{
		SpecLoader: adapters.NewPackageSpecAdapter(),
		Resolver:   adapters.NewGitRemoteAdapter(),
		Fetcher:    adapters.NewGitCloneAdapter(),
		Workspace:  adapters.NewBuildWorkspaceAdapter(),
		Stager:     adapters.NewTreeStagerAdapter(),
		Manifest:   adapters.NewManifestFileAdapter(),
		NewVerifier: func(python string) ports.ScriptVerifierPort {
			return adapters.NewPyCompileAdapter(python)
		},
		NewEmitter: buildEmitter,
		Clock:      time.Now,
	}
}

func buildEmitter(kind types.EmitterKind) (ports.ArtifactEmitterPort, error) {
	switch kind {
	case types.EmitterNative:
		return adapters.NewRPMNativeAdapter(), nil
	case types.EmitterRPMBuild:
		return adapters.NewRPMBuildAdapter(), nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported emitter backend")
	}
}

func timeNow(clock func() time.Time) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock().UTC()
}
