package types

// ManifestFile is one payload file entry with its content digest.
type ManifestFile struct {
	Path   string `json:"path"`
	Mode   string `json:"mode"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

// BuildManifest is the JSON record written next to the artifact.  The
// payload root is exactly one directory (Prefix), owned recursively;
// every file path in Files lives under it.
type BuildManifest struct {
	Package     string         `json:"package"`
	Version     string         `json:"version"`
	Release     string         `json:"release"`
	Tag         string         `json:"tag"`
	Commit      string         `json:"commit"`
	ShortCommit string         `json:"short_commit"`
	BuildID     string         `json:"build_id"`
	CreatedAt   string         `json:"created_at"`
	Artifact    string         `json:"artifact"`
	Prefix      string         `json:"prefix"`
	Requires    []string       `json:"requires"`
	ScriptCount int            `json:"script_count"`
	Files       []ManifestFile `json:"files"`
}
