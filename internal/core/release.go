package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"acopack/internal/types"
)

// PlaceholderCommit is the literal commit value used when resolution
// failed under the placeholder policy.
const PlaceholderCommit = "unknown"

// ArtifactArch is the architecture of every emitted artifact; the
// payload is interpreted scripts, never compiled objects.
const ArtifactArch = "noarch"

// ReleaseNumber builds the RPM release string, embedding the short
// commit so an installed package can always be traced back to the exact
// source state: "1.git<short><dist>".
func ReleaseNumber(shortCommit string, dist string) string {
	return "1.git" + shortCommit + dist
}

// ArtifactFileName builds the canonical artifact file name
// <package>-<version>-<release>.<arch>.rpm.
func ArtifactFileName(pkg string, version string, release string) string {
	return fmt.Sprintf("%s-%s-%s.%s.rpm", pkg, version, release, ArtifactArch)
}

// ParseArtifactFileName recovers package, version, release, and arch
// from an artifact file name.  Package names may themselves contain
// hyphens, so fields are split from the right.
func ParseArtifactFileName(name string) (types.ArtifactInfo, error) {
	malformed := func() (types.ArtifactInfo, error) {
		return types.ArtifactInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("malformed artifact file name: %s", name))
	}
	base, ok := strings.CutSuffix(name, ".rpm")
	if !ok {
		return malformed()
	}
	archAt := strings.LastIndex(base, ".")
	if archAt < 0 {
		return malformed()
	}
	arch := base[archAt+1:]
	relAt := strings.LastIndex(base[:archAt], "-")
	if relAt < 0 {
		return malformed()
	}
	release := base[relAt+1 : archAt]
	verAt := strings.LastIndex(base[:relAt], "-")
	if verAt < 0 {
		return malformed()
	}
	info := types.ArtifactInfo{
		Package: base[:verAt],
		Version: base[verAt+1 : relAt],
		Release: release,
		Arch:    arch,
	}
	if info.Package == "" || info.Version == "" || info.Release == "" || info.Arch == "" {
		return malformed()
	}
	return info, nil
}
