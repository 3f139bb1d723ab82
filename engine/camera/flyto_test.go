package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlyToReachesExactEndPose(t *testing.T) {
	ctrl := NewCameraController()
	f := NewFlyTo()

	focus := [3]float32{0.5, 0.6, 0}
	f.Start(ctrl, focus)
	require.True(t, f.Active())

	// Speed 2.0 finishes in 0.5s; step in uneven frames past the end.
	for _, dt := range []float32{0.1, 0.07, 0.16, 0.3} {
		f.Update(ctrl, dt)
	}

	assert.False(t, f.Active())
	assert.Equal(t, float32(1), f.Progress())

	// End pose is the focus offset by (0, 0.3, 1.5), looking at the focus.
	px, py, pz := ctrl.Position()
	assert.InDelta(t, 0.5, px, 1e-4)
	assert.InDelta(t, 0.9, py, 1e-4)
	assert.InDelta(t, 1.5, pz, 1e-4)

	tx, ty, tz := ctrl.Target()
	assert.InDelta(t, 0.5, tx, 1e-4)
	assert.InDelta(t, 0.6, ty, 1e-4)
	assert.InDelta(t, 0, tz, 1e-4)
}

func TestFlyToHoldsFinalPose(t *testing.T) {
	ctrl := NewCameraController()
	f := NewFlyTo()

	f.Start(ctrl, [3]float32{0, 0.5, 0})
	f.Update(ctrl, 1)
	require.False(t, f.Active())

	px1, py1, pz1 := ctrl.Position()

	// Further updates while inactive must not move the camera.
	f.Update(ctrl, 1)
	px2, py2, pz2 := ctrl.Position()
	assert.Equal(t, px1, px2)
	assert.Equal(t, py1, py2)
	assert.Equal(t, pz1, pz2)
}

func TestFlyToRedirectCapturesLivePose(t *testing.T) {
	ctrl := NewCameraController()
	f := NewFlyTo()

	f.Start(ctrl, [3]float32{-0.5, 0.6, 0})
	f.Update(ctrl, 0.1) // partway there
	midX, midY, midZ := ctrl.Position()

	// Redirect toward a second focus mid-flight: the new transition starts
	// from the live pose, not the original start, so there is no jump.
	f.Start(ctrl, [3]float32{0.5, 0.6, 0})
	require.True(t, f.Active())
	assert.Equal(t, float32(0), f.Progress())

	px, py, pz := ctrl.Position()
	assert.Equal(t, midX, px)
	assert.Equal(t, midY, py)
	assert.Equal(t, midZ, pz)

	// Progress at 0 eases from exactly the captured pose.
	f.Update(ctrl, 0)
	px, py, pz = ctrl.Position()
	assert.InDelta(t, midX, px, 1e-5)
	assert.InDelta(t, midY, py, 1e-5)
	assert.InDelta(t, midZ, pz, 1e-5)

	// And the redirected transition still lands exactly.
	f.Update(ctrl, 1)
	px, py, pz = ctrl.Position()
	assert.InDelta(t, 0.5, px, 1e-4)
	assert.InDelta(t, 0.9, py, 1e-4)
	assert.InDelta(t, 1.5, pz, 1e-4)
}

func TestFlyToOptions(t *testing.T) {
	ctrl := NewCameraController()
	f := NewFlyTo(
		WithFlyToSpeed(4),
		WithFlyToOffset(0, 0, 2),
	)

	f.Start(ctrl, [3]float32{1, 1, 1})

	// Speed 4 finishes in 0.25s.
	f.Update(ctrl, 0.25)
	assert.False(t, f.Active())

	px, py, pz := ctrl.Position()
	assert.InDelta(t, 1, px, 1e-4)
	assert.InDelta(t, 1, py, 1e-4)
	assert.InDelta(t, 3, pz, 1e-4)
}

func TestFlyToUpdateInactiveIsNoop(t *testing.T) {
	ctrl := NewCameraController()
	f := NewFlyTo()

	px1, py1, pz1 := ctrl.Position()
	f.Update(ctrl, 1)
	px2, py2, pz2 := ctrl.Position()
	assert.Equal(t, px1, px2)
	assert.Equal(t, py1, py2)
	assert.Equal(t, pz1, pz2)
}
