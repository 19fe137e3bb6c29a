package types

import "time"

// RemoteTag is one tag advertised by the upstream remote.
type RemoteTag struct {
	Name string
	Hash string
}

// ResolvedRelease binds a release tag to the commit it pointed at when
// resolution ran.  Tags are mutable upstream, so the pair is only valid
// for the invocation that produced it and is never persisted.
type ResolvedRelease struct {
	Tag         string
	Version     string
	Commit      string
	ShortCommit string

	// Placeholder is set when resolution failed under the placeholder
	// policy and Commit/ShortCommit carry the literal "unknown".
	Placeholder bool
}

// CloneInfo describes a completed checkout of the upstream tree.
type CloneInfo struct {
	Path       string
	Head       string
	CommitTime time.Time
}

// StageReport summarizes a staged payload tree.
type StageReport struct {
	Root        string
	FileCount   int
	ScriptCount int
}

// VerifyReport summarizes a successful script verification pass.
type VerifyReport struct {
	Checked int
}
