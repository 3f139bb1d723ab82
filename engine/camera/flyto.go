package camera

import (
	"github.com/vitrine-gfx/vitrine-go/common"
)

// flyToImpl is the implementation of the FlyTo interface.
// State is owned by the frame loop; Start and Update are never called
// concurrently.
type flyToImpl struct {
	speed  float32
	offset [3]float32

	active   bool
	progress float32

	startPosition [3]float32
	startTarget   [3]float32
	endPosition   [3]float32
	endTarget     [3]float32
}

// FlyTo is a finite-duration eased camera transition toward a focus point:
// position and look-at target interpolate from a captured start pose to a
// computed end pose in front of the focus, after which the transition
// deactivates and holds its final pose (it does not auto-reverse).
//
// At most one transition runs at a time. Starting a new one while another is
// active captures the controller's live pose as the new start, producing a
// smooth redirect rather than a jump. While a transition is active the
// engine suppresses orbit-target clamping.
type FlyTo interface {
	// Active reports whether a transition is currently running.
	//
	// Returns:
	//   - bool: true while interpolating
	Active() bool

	// Progress returns the raw (un-eased) progress accumulator in [0, 1].
	//
	// Returns:
	//   - float32: the transition progress
	Progress() float32

	// Start begins a transition toward focus. The controller's current
	// position and target are captured as the start pose; the end pose is
	// the focus offset by the configured framing vector, looking at the
	// focus itself.
	//
	// Parameters:
	//   - ctrl: the controller whose live pose seeds the transition
	//   - focus: the world-space point to fly to
	Start(ctrl CameraController, focus [3]float32)

	// Update advances the transition by deltaSeconds and pushes the
	// interpolated pose into the controller, re-deriving its internal
	// state. When progress reaches 1 the final pose is applied exactly and
	// the transition deactivates. No-op while inactive.
	//
	// Parameters:
	//   - ctrl: the controller to drive
	//   - deltaSeconds: elapsed wall-clock time since the last frame
	Update(ctrl CameraController, deltaSeconds float32)
}

var _ FlyTo = &flyToImpl{}

// NewFlyTo creates a FlyTo transition with the provided options.
// Defaults: speed 2.0 (a full transition in 0.5 s), framing offset
// (0, 0.3, 1.5).
//
// Parameters:
//   - options: functional options to configure the transition
//
// Returns:
//   - FlyTo: the newly created transition
func NewFlyTo(options ...FlyToOption) FlyTo {
	f := &flyToImpl{
		speed:  2.0,
		offset: [3]float32{0, 0.3, 1.5},
	}
	for _, opt := range options {
		opt(f)
	}
	return f
}

func (f *flyToImpl) Active() bool {
	return f.active
}

func (f *flyToImpl) Progress() float32 {
	return f.progress
}

func (f *flyToImpl) Start(ctrl CameraController, focus [3]float32) {
	px, py, pz := ctrl.Position()
	tx, ty, tz := ctrl.Target()

	// Live pose, not any interrupted transition's original start.
	f.startPosition = [3]float32{px, py, pz}
	f.startTarget = [3]float32{tx, ty, tz}
	f.endPosition = common.Add3(focus, f.offset)
	f.endTarget = focus
	f.progress = 0
	f.active = true
}

func (f *flyToImpl) Update(ctrl CameraController, deltaSeconds float32) {
	if !f.active {
		return
	}

	f.progress += deltaSeconds * f.speed
	if f.progress >= 1 {
		f.progress = 1
		f.active = false
	}

	t := common.Smoothstep(f.progress)
	pos := common.Lerp3(f.startPosition, f.endPosition, t)
	tgt := common.Lerp3(f.startTarget, f.endTarget, t)
	ctrl.SetPose(pos[0], pos[1], pos[2], tgt[0], tgt[1], tgt[2])
}
