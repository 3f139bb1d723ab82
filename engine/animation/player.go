package animation

import (
	"github.com/vitrine-gfx/vitrine-go/common"
	"github.com/vitrine-gfx/vitrine-go/engine/scene"
)

// Default master loop authoring constants: 100 frames at 24 fps.
const (
	// DefaultMasterFrames is the authored loop length in frames.
	DefaultMasterFrames = 100

	// DefaultMasterFPS is the authored frame rate.
	DefaultMasterFPS = 24
)

// playerImpl is the implementation of the Player interface.
type playerImpl struct {
	masterTime     float32
	masterDuration float32
	actions        []*action
}

// action is the playback state for one bound clip.
type action struct {
	clip     *Clip
	clipTime float32
	bindings []binding
}

// binding is a track resolved to a concrete setter on a scene node.
// Tracks that fail to resolve (missing node, unknown property path) get no
// binding and silently produce no motion.
type binding struct {
	track *Track
	apply func(cursor float32)
}

// Player advances a shared master clock every frame and maps it onto each
// bound clip's own duration, so all clips stay phase-locked to one master
// cycle regardless of individual authored length. A clip authored for 2s and
// one for 4s both complete exactly one cycle every master duration,
// proportionally sped up or slowed.
type Player interface {
	// Bind resolves the clips' tracks against the scene and installs them as
	// the active playback set, fully stopping any previous state first (no
	// leaked cursors from a prior scene load). Clips with no resolvable
	// tracks still get an action so their cursor stays observable.
	//
	// Parameters:
	//   - sc: the loaded scene to resolve track targets against
	//   - clips: the (already retargeted and filtered) clips to play
	Bind(sc scene.Scene, clips []*Clip)

	// Update advances the master clock by deltaSeconds and seeks every bound
	// clip to its phase-locked cursor, applying all track values to the
	// scene. Clips with zero duration are skipped. No-op when nothing is
	// bound.
	//
	// Parameters:
	//   - deltaSeconds: elapsed wall-clock time since the last frame
	Update(deltaSeconds float32)

	// Stop clears all playback state and resets the master clock.
	Stop()

	// MasterTime returns the monotonic master clock in seconds.
	//
	// Returns:
	//   - float32: seconds since playback started
	MasterTime() float32

	// MasterDuration returns the master loop length in seconds.
	//
	// Returns:
	//   - float32: the master loop duration
	MasterDuration() float32

	// ClipTime returns the current cursor of the named clip.
	//
	// Parameters:
	//   - name: the clip name
	//
	// Returns:
	//   - float32: the clip-local cursor in seconds
	//   - bool: false if no clip with that name is bound
	ClipTime(name string) (float32, bool)
}

var _ Player = &playerImpl{}

// NewPlayer creates a Player with the provided options.
// The master duration defaults to the authored loop: 100 frames at 24 fps.
//
// Parameters:
//   - options: functional options to configure the player
//
// Returns:
//   - Player: the newly created player
func NewPlayer(options ...PlayerBuilderOption) Player {
	p := &playerImpl{
		masterDuration: float32(DefaultMasterFrames) / float32(DefaultMasterFPS),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *playerImpl) Bind(sc scene.Scene, clips []*Clip) {
	p.Stop()

	for _, c := range clips {
		a := &action{clip: c}
		for _, t := range c.Tracks {
			if b, ok := resolveBinding(sc, t); ok {
				a.bindings = append(a.bindings, b)
			}
		}
		p.actions = append(p.actions, a)
	}
}

func (p *playerImpl) Update(deltaSeconds float32) {
	if len(p.actions) == 0 {
		return
	}

	p.masterTime += deltaSeconds
	loopTime := common.Mod(p.masterTime, p.masterDuration)

	for _, a := range p.actions {
		if a.clip.Duration <= 0 {
			continue
		}
		cursor := (loopTime / p.masterDuration) * a.clip.Duration
		a.clipTime = cursor
		for _, b := range a.bindings {
			b.apply(cursor)
		}
	}
}

func (p *playerImpl) Stop() {
	p.actions = nil
	p.masterTime = 0
}

func (p *playerImpl) MasterTime() float32 {
	return p.masterTime
}

func (p *playerImpl) MasterDuration() float32 {
	return p.masterDuration
}

func (p *playerImpl) ClipTime(name string) (float32, bool) {
	for _, a := range p.actions {
		if a.clip.Name == name {
			return a.clipTime, true
		}
	}
	return 0, false
}

// resolveBinding turns a track's (targetName, propertyPath) tag into a
// concrete setter closure over the resolved node. Missing nodes and unknown
// property paths yield no binding.
func resolveBinding(sc scene.Scene, t *Track) (binding, bool) {
	n := sc.Find(t.TargetName)
	if n == nil {
		return binding{}, false
	}

	switch t.Property {
	case PropertyPosition:
		keys := t.VectorKeys
		return binding{track: t, apply: func(cursor float32) {
			n.SetPosition(sampleVector(keys, cursor))
		}}, len(keys) > 0
	case PropertyScale:
		keys := t.VectorKeys
		return binding{track: t, apply: func(cursor float32) {
			n.SetScale(sampleVector(keys, cursor))
		}}, len(keys) > 0
	case PropertyRotation:
		keys := t.QuaternionKeys
		return binding{track: t, apply: func(cursor float32) {
			n.SetRotation(sampleQuaternion(keys, cursor))
		}}, len(keys) > 0
	default:
		return binding{}, false
	}
}

// sampleVector evaluates a vector curve at time t with linear interpolation,
// holding the first/last key outside the curve's time range.
func sampleVector(keys []VectorKeyframe, t float32) [3]float32 {
	if t <= keys[0].Time {
		return keys[0].Value
	}
	last := keys[len(keys)-1]
	if t >= last.Time {
		return last.Value
	}
	for i := 1; i < len(keys); i++ {
		if t < keys[i].Time {
			k0, k1 := keys[i-1], keys[i]
			f := (t - k0.Time) / (k1.Time - k0.Time)
			return common.Lerp3(k0.Value, k1.Value, f)
		}
	}
	return last.Value
}

// sampleQuaternion evaluates a rotation curve at time t with normalized
// linear interpolation, holding the first/last key outside the range.
func sampleQuaternion(keys []QuaternionKeyframe, t float32) [4]float32 {
	if t <= keys[0].Time {
		return keys[0].Value
	}
	last := keys[len(keys)-1]
	if t >= last.Time {
		return last.Value
	}
	for i := 1; i < len(keys); i++ {
		if t < keys[i].Time {
			k0, k1 := keys[i-1], keys[i]
			f := (t - k0.Time) / (k1.Time - k0.Time)
			return common.LerpQuat(k0.Value, k1.Value, f)
		}
	}
	return last.Value
}
