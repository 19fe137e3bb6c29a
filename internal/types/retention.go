package types

// ArtifactInfo identifies one emitted artifact found in an output
// directory, parsed back from its file name.
type ArtifactInfo struct {
	Package string
	Version string
	Release string
	Arch    string
	Path    string
}

type ArtifactRetentionPolicy struct {
	KeepLast        int
	ProtectVersions []string
	DryRun          bool
}

type ArtifactPrunePlan struct {
	Keep   []ArtifactInfo
	Delete []ArtifactInfo
}
