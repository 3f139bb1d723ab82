package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine-gfx/vitrine-go/engine/animation"
	"github.com/vitrine-gfx/vitrine-go/engine/material"
	"github.com/vitrine-gfx/vitrine-go/engine/scene"
)

func showcaseScene() (scene.Scene, []*animation.Clip) {
	root := scene.NewNode("Room")
	root.AddChild(scene.NewNode("Centerpiece",
		scene.WithBoundingRadius(0.4),
		scene.WithMaterial(material.NewMaterial(
			material.WithName("centerpiece"),
			material.WithColorTexture(&material.Texture{Name: "albedo"}),
		)),
	))
	root.AddChild(scene.NewNode("Sign_ProjectA", scene.WithBoundingRadius(0.15)))

	clip := &animation.Clip{
		Name:     "loop",
		Duration: 2,
		Tracks: []*animation.Track{
			{
				TargetName: "Centerpiece_Baked",
				Property:   animation.PropertyPosition,
				VectorKeys: []animation.VectorKeyframe{
					{Time: 0, Value: [3]float32{0, 0, 0}},
					{Time: 2, Value: [3]float32{0, 1, 0}},
				},
			},
			{
				TargetName: "Sign_ProjectA",
				Property:   animation.PropertyScale,
				VectorKeys: []animation.VectorKeyframe{
					{Time: 0, Value: [3]float32{1, 1, 1}},
					{Time: 2, Value: [3]float32{3, 3, 3}},
				},
			},
		},
	}
	return scene.NewScene("showcase", root), []*animation.Clip{clip}
}

func TestUpdateBeforeLoadSceneIsNoop(t *testing.T) {
	e := NewEngine()

	assert.NotPanics(t, func() { e.Update(0.1) })
	assert.Equal(t, float32(0), e.Player().MasterTime())
	assert.Nil(t, e.Scene())
	assert.Nil(t, e.Signs())
}

func TestLoadSceneRunsReadyPasses(t *testing.T) {
	e := NewEngine()
	sc, clips := showcaseScene()

	e.LoadScene(sc, clips)

	// Material normalized to unlit.
	m := sc.Find("Centerpiece").Material()
	require.NotNil(t, m)
	assert.Equal(t, material.KindUnlit, m.Kind())

	// Baked track retargeted onto the live node name.
	assert.Equal(t, "Centerpiece", clips[0].Tracks[0].TargetName)

	// The sign's animated scale track was dropped in favor of the hover
	// spring; only the position track remains.
	require.Len(t, clips[0].Tracks, 1)

	// The sign is registered for interaction.
	require.NotNil(t, e.Signs())
	assert.True(t, e.Signs().Contains(sc.Find("Sign_ProjectA")))

	assert.Equal(t, sc, e.Scene())
}

func TestUpdateAdvancesPlaybackAndClampsTarget(t *testing.T) {
	e := NewEngine()
	sc, clips := showcaseScene()
	e.LoadScene(sc, clips)

	e.Update(0.5)

	// The master clock advanced and drove the retargeted track.
	cursor, ok := e.Player().ClipTime("loop")
	require.True(t, ok)
	assert.Greater(t, cursor, float32(0))
	assert.Greater(t, sc.Find("Centerpiece").Position()[1], float32(0))

	// With no transition active, the orbit target was pulled into the
	// showcase bounds (default y minimum 0.3).
	_, ty, _ := e.Camera().Controller().Target()
	assert.InDelta(t, 0.3, ty, 1e-5)
}

func TestClampSuppressedWhileFlyToActive(t *testing.T) {
	e := NewEngine()
	sc, clips := showcaseScene()
	e.LoadScene(sc, clips)

	ctrl := e.Camera().Controller()

	// Fly toward a focus above the target y bound.
	e.FlyTo().Start(ctrl, [3]float32{0, 2, 0})
	e.Update(0.1)
	require.True(t, e.FlyTo().Active())

	// Mid-transition the interpolated target may sit outside the bounds;
	// the clamp must not fight the transition.
	_, ty, _ := ctrl.Target()
	assert.Greater(t, ty, float32(0))

	// Finish the transition: the end target holds even though it is outside
	// the bounds, until the next frame's clamp takes over.
	e.Update(1)
	require.False(t, e.FlyTo().Active())
	_, ty, _ = ctrl.Target()
	assert.InDelta(t, 2, ty, 1e-4)

	e.Update(0.01)
	_, ty, _ = ctrl.Target()
	assert.InDelta(t, 1.0, ty, 1e-5)
}

func TestLoadSceneReplacesPreviousSession(t *testing.T) {
	e := NewEngine()

	first, firstClips := showcaseScene()
	e.LoadScene(first, firstClips)
	e.Update(1)
	require.Greater(t, e.Player().MasterTime(), float32(0))

	secondRoot := scene.NewNode("Lobby")
	secondRoot.AddChild(scene.NewNode("Sign_Lobby"))
	second := scene.NewScene("lobby", secondRoot)
	e.LoadScene(second, nil)

	// Previous playback state is fully gone.
	assert.Equal(t, float32(0), e.Player().MasterTime())
	_, ok := e.Player().ClipTime("loop")
	assert.False(t, ok)

	// The sign registry was rebuilt for the new scene.
	assert.False(t, e.Signs().Contains(first.Find("Sign_ProjectA")))
	assert.True(t, e.Signs().Contains(second.Find("Sign_Lobby")))
}

func TestPointerEventsDrainedInOrder(t *testing.T) {
	e := NewEngine()
	sc, clips := showcaseScene()
	e.LoadScene(sc, clips)

	// Headless engine has a zero viewport, so every pick resolves to no
	// target; the events must still drain without blocking or panicking.
	for i := 0; i < 100; i++ {
		e.PointerMove(float32(i), float32(i))
	}
	e.Click(10, 10)

	assert.NotPanics(t, func() { e.Update(0.016) })
	assert.Nil(t, e.Signs().Hovered())
}

func TestQuitIsIdempotent(t *testing.T) {
	e := NewEngine()
	assert.NotPanics(t, func() {
		e.Quit()
		e.Quit()
	})
}
