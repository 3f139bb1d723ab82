package animation

import (
	"strings"

	"github.com/vitrine-gfx/vitrine-go/engine/scene"
)

// BakedSuffix is the exporter-appended node name suffix stripped during
// target resolution. Matching is case-insensitive.
const BakedSuffix = "_Baked"

// StripBakedSuffix removes a trailing BakedSuffix from a node name,
// case-insensitively. Returns the name unchanged if the suffix is absent.
//
// Parameters:
//   - name: the node name
//
// Returns:
//   - string: the name without the baked suffix
func StripBakedSuffix(name string) string {
	if len(name) >= len(BakedSuffix) &&
		strings.EqualFold(name[len(name)-len(BakedSuffix):], BakedSuffix) {
		return name[:len(name)-len(BakedSuffix)]
	}
	return name
}

// ResolveTarget maps an authored track target name onto an actual node name.
// Rules apply in order: exact match, exact match after stripping the baked
// suffix, first substring containment, first substring containment of the
// stripped name. "First" means first in the provided traversal order; when
// several node names contain the same substring the earliest wins, which is
// fragile but matches what downstream content was authored against.
// If no rule matches the original name is returned unchanged — resolution is
// best effort and an unresolved track simply produces no motion.
//
// Parameters:
//   - target: the authored track target name
//   - names: node names in scene traversal order
//
// Returns:
//   - string: the resolved node name
func ResolveTarget(target string, names []string) string {
	for _, n := range names {
		if n == target {
			return target
		}
	}

	stripped := StripBakedSuffix(target)
	if stripped != target {
		for _, n := range names {
			if n == stripped {
				return stripped
			}
		}
	}

	for _, n := range names {
		if strings.Contains(n, target) {
			return n
		}
	}

	if stripped != target {
		for _, n := range names {
			if strings.Contains(n, stripped) {
				return n
			}
		}
	}

	return target
}

// RetargetClips rewrites every track's target name against the scene's node
// names using ResolveTarget. Tracks whose resolution differs from the
// authored name are rebound; unresolvable tracks keep their (possibly
// dangling) name.
//
// Parameters:
//   - clips: the clips to retarget
//   - sc: the loaded scene providing node names in traversal order
//
// Returns:
//   - int: the number of tracks whose binding changed
func RetargetClips(clips []*Clip, sc scene.Scene) int {
	names := sc.NodeNames()
	changed := 0
	for _, c := range clips {
		for _, t := range c.Tracks {
			resolved := ResolveTarget(t.TargetName, names)
			if resolved != t.TargetName {
				t.TargetName = resolved
				changed++
			}
		}
	}
	return changed
}

// FilterSignScaleTracks drops scale tracks bound to interactive objects
// (nodes whose name contains marker). The hover spring owns the scale
// channel on those nodes; a competing animated scale track would fight it
// every frame.
//
// Parameters:
//   - clips: the clips to filter in place
//   - marker: the interactive-object name marker
//
// Returns:
//   - int: the number of tracks removed
func FilterSignScaleTracks(clips []*Clip, marker string) int {
	removed := 0
	for _, c := range clips {
		kept := c.Tracks[:0]
		for _, t := range c.Tracks {
			if t.Property == PropertyScale && strings.Contains(t.TargetName, marker) {
				removed++
				continue
			}
			kept = append(kept, t)
		}
		c.Tracks = kept
	}
	return removed
}
