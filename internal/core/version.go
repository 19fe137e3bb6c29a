package core

import (
	"fmt"
	"sort"
	"unicode"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"acopack/internal/types"
)

// ShortCommitLen is the fixed width of the abbreviated commit hash
// embedded in release strings and artifact names.
const ShortCommitLen = 7

// DeriveVersion strips a single leading non-digit marker rune from a
// release tag: "v0.1" becomes "0.1", "2.3.4" is returned unchanged.
// Applying it to its own output is a no-op for well-formed tags.
func DeriveVersion(tag string) string {
	runes := []rune(tag)
	if len(runes) > 0 && !unicode.IsDigit(runes[0]) {
		return string(runes[1:])
	}
	return tag
}

// ValidateVersion checks that a derived version parses as a PEP 440
// version.  The upstream trees being packaged are Python projects, so
// their tags follow Python versioning; anything else is a malformed tag.
func ValidateVersion(version string) error {
	if _, err := pep440.Parse(version); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("derived version %q is not a valid version", version)).
			WithCause(err)
	}
	return nil
}

// ShortCommit returns the fixed-width prefix of a full commit hash.
// Hashes shorter than the width are returned unchanged.
func ShortCommit(commit string) string {
	if len(commit) <= ShortCommitLen {
		return commit
	}
	return commit[:ShortCommitLen]
}

// TagInfo pairs a remote tag with its derived version.
type TagInfo struct {
	Tag     string
	Version string
}

// SortTagInfos orders tags by PEP 440 version, oldest first.  Tags whose
// derived version does not parse sort before all parseable ones, in
// lexical order, so the newest parseable tag is always last.
func SortTagInfos(tags []TagInfo) []TagInfo {
	ordered := append([]TagInfo(nil), tags...)
	parsed := map[string]pep440.Version{}
	for _, tag := range ordered {
		if v, err := pep440.Parse(tag.Version); err == nil {
			parsed[tag.Tag] = v
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		vi, oki := parsed[ordered[i].Tag]
		vj, okj := parsed[ordered[j].Tag]
		if oki != okj {
			return !oki
		}
		if !oki {
			return ordered[i].Tag < ordered[j].Tag
		}
		if vi.Equal(vj) {
			return ordered[i].Tag < ordered[j].Tag
		}
		return vi.LessThan(vj)
	})
	return ordered
}

// LatestTag returns the newest tag by version order.
func LatestTag(tags []TagInfo) (TagInfo, error) {
	if len(tags) == 0 {
		return TagInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("remote has no tags")
	}
	ordered := SortTagInfos(tags)
	return ordered[len(ordered)-1], nil
}

// DeriveTagInfos maps remote tags to TagInfo entries.
func DeriveTagInfos(tags []types.RemoteTag) []TagInfo {
	infos := make([]TagInfo, 0, len(tags))
	for _, tag := range tags {
		infos = append(infos, TagInfo{Tag: tag.Name, Version: DeriveVersion(tag.Name)})
	}
	return infos
}
