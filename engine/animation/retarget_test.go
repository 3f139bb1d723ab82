package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine-gfx/vitrine-go/engine/scene"
)

func TestStripBakedSuffix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"exact suffix", "Chair_Baked", "Chair"},
		{"case-insensitive suffix", "Chair_baked", "Chair"},
		{"uppercase suffix", "Chair_BAKED", "Chair"},
		{"no suffix", "Chair", "Chair"},
		{"suffix mid-name kept", "Chair_Baked_v2", "Chair_Baked_v2"},
		{"suffix only", "_Baked", ""},
		{"short name", "Ba", "Ba"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripBakedSuffix(tt.in))
		})
	}
}

func TestResolveTarget(t *testing.T) {
	names := []string{"Root", "Desk", "Desk_Lamp", "Sign_ProjectA", "Chair"}

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"exact match wins", "Desk", "Desk"},
		{"stripped exact match", "Chair_Baked", "Chair"},
		{"substring containment", "Lamp", "Desk_Lamp"},
		{"stripped substring", "ProjectA_Baked", "Sign_ProjectA"},
		{"no match left dangling", "Window", "Window"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveTarget(tt.target, names))
		})
	}
}

func TestResolveTargetFirstContainmentWins(t *testing.T) {
	// Two candidates contain the substring; traversal order breaks the tie.
	names := []string{"Shelf_Sign_Old", "Wall_Sign"}
	assert.Equal(t, "Shelf_Sign_Old", ResolveTarget("Sign", names))

	// Exact match is still preferred over an earlier containment.
	names = []string{"Shelf_Sign_Old", "Sign"}
	assert.Equal(t, "Sign", ResolveTarget("Sign", names))
}

func TestRetargetClips(t *testing.T) {
	root := scene.NewNode("Root")
	root.AddChild(scene.NewNode("Desk"))
	root.AddChild(scene.NewNode("Chair"))
	sc := scene.NewScene("room", root)

	clip := &Clip{
		Name:     "loop",
		Duration: 2,
		Tracks: []*Track{
			{TargetName: "Desk", Property: PropertyPosition},
			{TargetName: "Chair_Baked", Property: PropertyRotation},
			{TargetName: "Window", Property: PropertyPosition},
		},
	}

	changed := RetargetClips([]*Clip{clip}, sc)

	assert.Equal(t, 1, changed)
	assert.Equal(t, "Desk", clip.Tracks[0].TargetName)
	assert.Equal(t, "Chair", clip.Tracks[1].TargetName)
	assert.Equal(t, "Window", clip.Tracks[2].TargetName)
}

func TestFilterSignScaleTracks(t *testing.T) {
	clip := &Clip{
		Name:     "loop",
		Duration: 2,
		Tracks: []*Track{
			{TargetName: "Sign_ProjectA", Property: PropertyScale},
			{TargetName: "Sign_ProjectA", Property: PropertyPosition},
			{TargetName: "Desk", Property: PropertyScale},
			{TargetName: "Sign_ProjectB", Property: PropertyScale},
		},
	}

	removed := FilterSignScaleTracks([]*Clip{clip}, "Sign")

	assert.Equal(t, 2, removed)
	require.Len(t, clip.Tracks, 2)
	// Non-sign scale tracks and sign non-scale tracks survive.
	assert.Equal(t, "Sign_ProjectA", clip.Tracks[0].TargetName)
	assert.Equal(t, PropertyPosition, clip.Tracks[0].Property)
	assert.Equal(t, "Desk", clip.Tracks[1].TargetName)
}

func TestNewTrackSplitsCombinedName(t *testing.T) {
	tr := NewTrack("Centerpiece_Baked.position")
	assert.Equal(t, "Centerpiece_Baked", tr.TargetName)
	assert.Equal(t, PropertyPosition, tr.Property)
	assert.Empty(t, tr.VectorKeys)
	assert.Empty(t, tr.QuaternionKeys)
}

func TestParseTrackName(t *testing.T) {
	target, property := ParseTrackName("Desk_Lamp.position")
	assert.Equal(t, "Desk_Lamp", target)
	assert.Equal(t, PropertyPosition, property)

	// Everything after the first dot is the property path.
	target, property = ParseTrackName("Rig.Bone.quaternion")
	assert.Equal(t, "Rig", target)
	assert.Equal(t, "Bone.quaternion", property)

	target, property = ParseTrackName("nodots")
	assert.Equal(t, "nodots", target)
	assert.Equal(t, "", property)
}

func TestComputeDuration(t *testing.T) {
	clip := &Clip{
		Tracks: []*Track{
			{
				Property:   PropertyPosition,
				VectorKeys: []VectorKeyframe{{Time: 0}, {Time: 1.5}},
			},
			{
				Property:       PropertyRotation,
				QuaternionKeys: []QuaternionKeyframe{{Time: 0}, {Time: 4.2}},
			},
		},
	}
	clip.ComputeDuration()
	assert.InDelta(t, 4.2, clip.Duration, 1e-5)
}
