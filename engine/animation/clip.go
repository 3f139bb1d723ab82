// package animation holds the baked-scene playback model: clips of keyframe
// tracks bound to scene nodes by name, a retargeting pass that repairs those
// bindings against the loaded graph, and a player that phase-locks every clip
// onto one master loop.
package animation

import (
	"strings"
)

// Track property paths as authored in baked assets.
const (
	// PropertyPosition animates a node's local translation.
	PropertyPosition = "position"

	// PropertyRotation animates a node's local rotation quaternion.
	PropertyRotation = "quaternion"

	// PropertyScale animates a node's local scale.
	PropertyScale = "scale"
)

// VectorKeyframe stores a 3D vector value at a specific time.
type VectorKeyframe struct {
	// Time is the keyframe time in seconds from clip start.
	Time float32

	// Value is the sampled vector at Time.
	Value [3]float32
}

// QuaternionKeyframe stores a rotation quaternion (x, y, z, w) at a specific time.
type QuaternionKeyframe struct {
	// Time is the keyframe time in seconds from clip start.
	Time float32

	// Value is the sampled quaternion at Time.
	Value [4]float32
}

// Track is a single animated property curve bound to one scene node by name.
// Vector tracks (position, scale) use VectorKeys; rotation tracks use
// QuaternionKeys. The binding is by name only; resolution to an actual node
// happens at retarget/bind time.
type Track struct {
	// TargetName is the name of the node this track animates.
	// Rewritten by RetargetClips when the authored name does not resolve.
	TargetName string

	// Property is the animated property path (position, quaternion, scale).
	// Property paths the player does not recognize bind to nothing and the
	// track produces no motion.
	Property string

	// VectorKeys holds the curve for vector-valued tracks.
	VectorKeys []VectorKeyframe

	// QuaternionKeys holds the curve for rotation tracks.
	QuaternionKeys []QuaternionKeyframe
}

// NewTrack creates a track from its combined "<nodeName>.<propertyPath>"
// name, the form baked exporters emit. Keyframes are attached by the caller
// to whichever key slice matches the property.
//
// Parameters:
//   - name: the combined track name
//
// Returns:
//   - *Track: the track with target and property split out
func NewTrack(name string) *Track {
	target, property := ParseTrackName(name)
	return &Track{TargetName: target, Property: property}
}

// ParseTrackName splits a "<nodeName>.<propertyPath>" track name at the first
// dot. The property path may itself contain dots; node names may not.
//
// Parameters:
//   - name: the combined track name
//
// Returns:
//   - string: the node name portion
//   - string: the property path portion (empty if the name has no dot)
func ParseTrackName(name string) (string, string) {
	target, property, _ := strings.Cut(name, ".")
	return target, property
}

// Clip is a named bundle of animation tracks with an intrinsic duration.
// Clips are immutable once retargeted; only the set of tracks may be
// filtered at init.
type Clip struct {
	// Name is the clip identifier from the source asset.
	Name string

	// Duration is the authored clip length in seconds.
	Duration float32

	// Tracks are the property curves belonging to this clip.
	Tracks []*Track
}

// ComputeDuration sets the clip duration to the largest keyframe time across
// all tracks, mirroring how baked exporters derive clip length.
func (c *Clip) ComputeDuration() {
	var max float32
	for _, t := range c.Tracks {
		for _, k := range t.VectorKeys {
			if k.Time > max {
				max = k.Time
			}
		}
		for _, k := range t.QuaternionKeys {
			if k.Time > max {
				max = k.Time
			}
		}
	}
	c.Duration = max
}
