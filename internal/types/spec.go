package types

// PackageSpec is the declarative package definition loaded from
// acopack.yaml.  It carries everything the build pipeline needs that is
// not tied to a single invocation: the upstream repository, artifact
// metadata, and the policy knobs that used to live in per-variant
// wrapper scripts.  CLI flags and environment variables override spec
// values field by field.
type PackageSpec struct {
	Package string `yaml:"package"`
	Repo    string `yaml:"repo"`
	Summary string `yaml:"summary,omitempty"`
	License string `yaml:"license,omitempty"`
	URL     string `yaml:"url,omitempty"`

	// Prefix is the single directory the emitted artifact owns,
	// recursively.  Defaults to /usr/lib/<package>.
	Prefix   string   `yaml:"prefix,omitempty"`
	Requires []string `yaml:"requires,omitempty"`

	// Dist is an optional release suffix appended verbatim after the
	// short commit, e.g. ".el9".
	Dist string `yaml:"dist,omitempty"`

	Python       string          `yaml:"python,omitempty"`
	OnUnresolved UnresolvedPolicy `yaml:"on_unresolved,omitempty"`
	Emitter      EmitterKind     `yaml:"emitter,omitempty"`
}
