package app

import (
	"sort"
	"strings"

	debversion "github.com/knqyf263/go-deb-version"

	"acopack/internal/types"
)

// BuildArtifactPrunePlan partitions artifacts into keep and delete sets.
// Only the rules in the policy grant retention: protected versions are
// always kept, and with KeepLast > 0 the newest N per package survive.
func BuildArtifactPrunePlan(artifacts []types.ArtifactInfo, policy types.ArtifactRetentionPolicy) types.ArtifactPrunePlan {
	normalized := normalizeRetentionPolicy(policy)
	protected := normalizeSet(normalized.ProtectVersions)

	keepPaths := map[string]struct{}{}
	grouped := map[string][]types.ArtifactInfo{}
	for _, artifact := range artifacts {
		if _, ok := protected[strings.ToLower(artifact.Version)]; ok {
			keepPaths[artifact.Path] = struct{}{}
		}
		grouped[artifact.Package] = append(grouped[artifact.Package], artifact)
	}

	if normalized.KeepLast > 0 {
		for _, group := range grouped {
			sorted := append([]types.ArtifactInfo(nil), group...)
			sort.Slice(sorted, func(i, j int) bool {
				return artifactNewer(sorted[i], sorted[j])
			})
			limit := normalized.KeepLast
			if limit > len(sorted) {
				limit = len(sorted)
			}
			for i := 0; i < limit; i++ {
				keepPaths[sorted[i].Path] = struct{}{}
			}
		}
	}

	var keep []types.ArtifactInfo
	var del []types.ArtifactInfo
	for _, artifact := range artifacts {
		if _, ok := keepPaths[artifact.Path]; ok {
			keep = append(keep, artifact)
		} else {
			del = append(del, artifact)
		}
	}
	return types.ArtifactPrunePlan{Keep: keep, Delete: del}
}

// artifactNewer orders artifacts newest first.  Version comparison
// follows the Debian algorithm, which agrees with rpm's for the
// digits-and-dots versions and 1.git<hex>[.dist] releases acopack
// emits; anything unparseable falls back to lexical order.
func artifactNewer(a types.ArtifactInfo, b types.ArtifactInfo) bool {
	va, errA := debversion.NewVersion(a.Version + "-" + a.Release)
	vb, errB := debversion.NewVersion(b.Version + "-" + b.Release)
	if errA != nil || errB != nil {
		return a.Version+"-"+a.Release > b.Version+"-"+b.Release
	}
	if va.Equal(vb) {
		return a.Path < b.Path
	}
	return va.GreaterThan(vb)
}

func normalizeRetentionPolicy(policy types.ArtifactRetentionPolicy) types.ArtifactRetentionPolicy {
	normalized := policy
	if normalized.KeepLast < 0 {
		normalized.KeepLast = 0
	}
	return normalized
}

func normalizeSet(values []string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, value := range values {
		key := strings.ToLower(strings.TrimSpace(value))
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	return set
}
