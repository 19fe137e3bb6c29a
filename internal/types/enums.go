package types

// UnresolvedPolicy controls what happens when a release tag cannot be
// resolved against the remote.
type UnresolvedPolicy string

const (
	// UnresolvedFail aborts before any filesystem mutation.
	UnresolvedFail UnresolvedPolicy = "fail"
	// UnresolvedPlaceholder proceeds with the literal commit
	// placeholder "unknown" in all derived metadata.
	UnresolvedPlaceholder UnresolvedPolicy = "placeholder"
)

// EmitterKind selects the artifact emission backend.
type EmitterKind string

const (
	// EmitterNative writes the RPM in-process.
	EmitterNative EmitterKind = "native"
	// EmitterRPMBuild generates a spec file and shells out to rpmbuild.
	EmitterRPMBuild EmitterKind = "rpmbuild"
)
