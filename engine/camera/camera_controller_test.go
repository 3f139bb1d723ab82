package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampTargetPullsIntoBounds(t *testing.T) {
	ctrl := NewCameraController(
		WithTargetBoundsX(-0.6, 0.6),
		WithTargetBoundsY(0.3, 1.0),
	)

	// Pan drift has pushed the target well outside the showcase bounds.
	ctrl.SetTarget(2, -1, 0)
	ctrl.ClampTarget()

	tx, ty, tz := ctrl.Target()
	assert.InDelta(t, 0.6, tx, 1e-5)
	assert.InDelta(t, 0.3, ty, 1e-5)
	assert.InDelta(t, 0, tz, 1e-5)
}

func TestClampTargetPreservesOrbitOffset(t *testing.T) {
	ctrl := NewCameraController(
		WithTargetBoundsX(-0.6, 0.6),
		WithTargetBoundsY(0.3, 1.0),
	)

	ctrl.SetTarget(0, 0.5, 0)
	px0, py0, pz0 := ctrl.Position()
	tx0, ty0, tz0 := ctrl.Target()

	ctrl.SetTarget(5, 0.5, 0)
	ctrl.ClampTarget()

	// The camera keeps its spherical offset around the clamped target.
	px, py, pz := ctrl.Position()
	tx, ty, tz := ctrl.Target()
	assert.InDelta(t, px0-tx0, px-tx, 1e-4)
	assert.InDelta(t, py0-ty0, py-ty, 1e-4)
	assert.InDelta(t, pz0-tz0, pz-tz, 1e-4)
	assert.InDelta(t, 0.6, tx, 1e-5)
}

func TestClampTargetNoopWithinBounds(t *testing.T) {
	ctrl := NewCameraController(
		WithTargetBoundsX(-0.6, 0.6),
		WithTargetBoundsY(0.3, 1.0),
	)

	ctrl.SetTarget(0.1, 0.5, 0)
	px0, py0, pz0 := ctrl.Position()

	ctrl.ClampTarget()

	px, py, pz := ctrl.Position()
	assert.Equal(t, px0, px)
	assert.Equal(t, py0, py)
	assert.Equal(t, pz0, pz)
}

func TestClampTargetUnboundedByDefault(t *testing.T) {
	ctrl := NewCameraController()
	ctrl.SetTarget(100, -50, 7)
	ctrl.ClampTarget()

	tx, ty, tz := ctrl.Target()
	assert.Equal(t, float32(100), tx)
	assert.Equal(t, float32(-50), ty)
	assert.Equal(t, float32(7), tz)
}

func TestSetPoseRederivesSpherical(t *testing.T) {
	ctrl := NewCameraController()

	// Place the camera 2 units behind and 2 above the target.
	ctrl.SetPose(0, 2, 2, 0, 0, 0)

	assert.InDelta(t, math32.Sqrt(8), ctrl.Radius(), 1e-4)
	assert.InDelta(t, math32.Pi/4, ctrl.Elevation(), 1e-4)
	assert.InDelta(t, 0, ctrl.Azimuth(), 1e-4)

	px, py, pz := ctrl.Position()
	assert.Equal(t, float32(0), px)
	assert.Equal(t, float32(2), py)
	assert.Equal(t, float32(2), pz)
}

func TestSetPoseThenOrbitContinuesSmoothly(t *testing.T) {
	ctrl := NewCameraController()
	ctrl.SetPose(0, 2, 2, 0, 0, 0)

	r0 := ctrl.Radius()
	ctrl.OrbitRight()

	// Orbiting after an external pose keeps the derived radius.
	assert.InDelta(t, r0, ctrl.Radius(), 1e-4)
	px, py, pz := ctrl.Position()
	dist := math32.Sqrt(px*px + py*py + pz*pz)
	assert.InDelta(t, r0, dist, 1e-4)
}

func TestZoomClampsToRadiusBounds(t *testing.T) {
	ctrl := NewCameraController(WithRadiusBounds(1, 10))

	ctrl.Zoom(100)
	assert.Equal(t, float32(1), ctrl.Radius())

	ctrl.Zoom(-100)
	assert.Equal(t, float32(10), ctrl.Radius())
}

func TestOrbitElevationClamped(t *testing.T) {
	ctrl := NewCameraController(WithElevationBounds(0.1, 1.0))

	for i := 0; i < 100; i++ {
		ctrl.OrbitUp()
	}
	assert.InDelta(t, 1.0, ctrl.Elevation(), 1e-5)

	for i := 0; i < 200; i++ {
		ctrl.OrbitDown()
	}
	assert.InDelta(t, 0.1, ctrl.Elevation(), 1e-5)
}

func TestPanMovesTargetAndPositionTogether(t *testing.T) {
	ctrl := NewCameraController()
	px0, _, _ := ctrl.Position()
	tx0, _, _ := ctrl.Target()

	ctrl.PanRight(1)

	px, _, _ := ctrl.Position()
	tx, _, _ := ctrl.Target()
	require.NotEqual(t, px0, px)
	assert.InDelta(t, px-px0, tx-tx0, 1e-5)
}

func TestCameraMatricesUpdateFromController(t *testing.T) {
	ctrl := NewCameraController()
	cam := NewCamera(WithController(ctrl), WithAspect(16.0/9.0))

	vp1 := cam.ViewProjectionMatrix()

	ctrl.SetTarget(1, 0, 0)
	cam.Update()
	vp2 := cam.ViewProjectionMatrix()

	assert.NotEqual(t, vp1, vp2)
}
