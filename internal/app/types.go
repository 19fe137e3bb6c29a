package app

import "acopack/internal/types"

type ResolveRequest struct {
	Tag          string
	SpecPath     string
	Repo         string
	OnUnresolved types.UnresolvedPolicy
}

type ResolveResult struct {
	Repo        string
	Tag         string
	Version     string
	Commit      string
	ShortCommit string
	Placeholder bool
}

type BuildRequest struct {
	Tag          string
	SpecPath     string
	Repo         string
	Package      string
	Prefix       string
	Summary      string
	License      string
	URL          string
	Requires     []string
	Dist         string
	OutputDir    string
	Emitter      types.EmitterKind
	Python       string
	OnUnresolved types.UnresolvedPolicy
	KeepWork     bool
}

type BuildResult struct {
	ArtifactPath string
	ManifestPath string
	Package      string
	Version      string
	Release      string
	ShortCommit  string
	FileCount    int
	ScriptCount  int
}

type TagsRequest struct {
	SpecPath string
	Repo     string
	Latest   bool
}

type TagEntry struct {
	Tag         string
	Version     string
	ShortCommit string
}

type TagsResult struct {
	Entries []TagEntry
}

type ValidateRequest struct {
	SpecPath string
}

type ValidateResult struct {
	Package string
}

type InspectRequest struct {
	OutputDir string
}

type InspectArtifactSummary struct {
	Package     string
	Version     string
	Release     string
	Tag         string
	ShortCommit string
	Artifact    string
	Prefix      string
	FileCount   int
	ScriptCount int
}

type InspectResult struct {
	Artifacts []InspectArtifactSummary
}

type PruneRequest struct {
	OutputDir       string
	KeepLast        int
	ProtectVersions []string
	DryRun          bool
}

type PruneResult struct {
	KeepCount   int
	DeleteCount int
	Deleted     []string
	DryRun      bool
}
