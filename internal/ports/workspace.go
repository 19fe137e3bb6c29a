package ports

// BuildWorkspace is a scoped handle on the scratch space of one build
// invocation.  Close removes everything under Root; callers that want
// to inspect the tree afterwards acquire the workspace with keep set.
type BuildWorkspace interface {
	Root() string
	// SourceDir is the clone destination. The directory name
	// incorporates the derived version and is fresh per acquisition.
	SourceDir() string
	// BuildRoot is the staging area the payload tree is composed in.
	BuildRoot() string
	Close() error
}

type BuildWorkspacePort interface {
	Acquire(pkg string, version string, keep bool) (BuildWorkspace, error)
}
