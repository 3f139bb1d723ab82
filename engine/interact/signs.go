package interact

import (
	"strings"

	"github.com/vitrine-gfx/vitrine-go/common"
	"github.com/vitrine-gfx/vitrine-go/engine/scene"
)

// Hover spring defaults.
const (
	// DefaultMarker is the substring marking a node as an interactive sign.
	DefaultMarker = "Sign"

	// DefaultHoverScale is the scale multiplier a hovered sign eases toward.
	DefaultHoverScale = 1.2

	// DefaultSmoothing is the per-frame exponential smoothing factor.
	DefaultSmoothing = 0.15
)

// signEntry is the per-sign spring state.
type signEntry struct {
	node scene.Node

	// baseScale is the authored rest scale, captured exactly once at
	// registration before any hover scaling is applied.
	baseScale [3]float32

	// factor is the smoothed scale multiplier over baseScale.
	factor float32
}

// signRegistryImpl is the implementation of the SignRegistry interface.
// State is owned by the frame loop.
type signRegistryImpl struct {
	marker     string
	hoverScale float32
	smoothing  float32

	entries []*signEntry
	hovered scene.Node
}

// SignRegistry tracks every interactive sign in the scene and drives its
// hover scale spring: each frame every sign's scale factor eases toward the
// hover multiplier if it is the currently hovered sign, or back toward 1.0
// otherwise, and base-scale × factor is written to the node unconditionally
// so animation tracks cannot override it afterward. At most one sign is
// hovered at a time.
type SignRegistry interface {
	// Marker returns the name substring that marks a sign.
	//
	// Returns:
	//   - string: the marker substring
	Marker() string

	// Register adds a node to the registry, capturing its current scale as
	// the rest scale. Registering the same node twice is a no-op: the base
	// scale is never re-captured.
	//
	// Parameters:
	//   - n: the sign node to track
	Register(n scene.Node)

	// RegisterScene traverses the scene and registers every node whose name
	// contains the marker substring.
	//
	// Parameters:
	//   - sc: the scene to scan
	//
	// Returns:
	//   - int: the number of signs registered by this call
	RegisterScene(sc scene.Scene) int

	// Contains reports whether the node is a registered sign.
	//
	// Parameters:
	//   - n: the node to test
	//
	// Returns:
	//   - bool: true if registered
	Contains(n scene.Node) bool

	// SetHovered marks a sign as the single currently hovered object.
	// Passing a node that is not registered clears the hover instead.
	//
	// Parameters:
	//   - n: the hovered sign, or nil to clear
	SetHovered(n scene.Node)

	// Hovered returns the currently hovered sign, or nil.
	//
	// Returns:
	//   - scene.Node: the hovered sign or nil
	Hovered() scene.Node

	// ClearHovered clears the hover state; all signs decay back toward
	// their rest scale on subsequent updates.
	ClearHovered()

	// ScaleFactor returns the current smoothed scale multiplier of a
	// registered sign.
	//
	// Parameters:
	//   - n: the sign node
	//
	// Returns:
	//   - float32: the current factor
	//   - bool: false if the node is not registered
	ScaleFactor(n scene.Node) (float32, bool)

	// Update advances every sign's spring by one frame and writes the
	// resulting scale to the node. The smoothing is per-frame, not
	// delta-corrected; the engine ticks at a fixed rate.
	Update()
}

var _ SignRegistry = &signRegistryImpl{}

// NewSignRegistry creates a SignRegistry with the provided options.
//
// Parameters:
//   - options: functional options to configure the registry
//
// Returns:
//   - SignRegistry: the newly created registry
func NewSignRegistry(options ...SignRegistryOption) SignRegistry {
	r := &signRegistryImpl{
		marker:     DefaultMarker,
		hoverScale: DefaultHoverScale,
		smoothing:  DefaultSmoothing,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *signRegistryImpl) Marker() string {
	return r.marker
}

func (r *signRegistryImpl) Register(n scene.Node) {
	if r.find(n) != nil {
		return
	}
	r.entries = append(r.entries, &signEntry{
		node:      n,
		baseScale: n.Scale(),
		factor:    1.0,
	})
}

func (r *signRegistryImpl) RegisterScene(sc scene.Scene) int {
	before := len(r.entries)
	sc.Traverse(func(n scene.Node) bool {
		if strings.Contains(n.Name(), r.marker) {
			r.Register(n)
		}
		return true
	})
	return len(r.entries) - before
}

func (r *signRegistryImpl) Contains(n scene.Node) bool {
	return r.find(n) != nil
}

func (r *signRegistryImpl) SetHovered(n scene.Node) {
	if n == nil || r.find(n) == nil {
		r.hovered = nil
		return
	}
	r.hovered = n
}

func (r *signRegistryImpl) Hovered() scene.Node {
	return r.hovered
}

func (r *signRegistryImpl) ClearHovered() {
	r.hovered = nil
}

func (r *signRegistryImpl) ScaleFactor(n scene.Node) (float32, bool) {
	e := r.find(n)
	if e == nil {
		return 0, false
	}
	return e.factor, true
}

func (r *signRegistryImpl) Update() {
	for _, e := range r.entries {
		target := float32(1.0)
		if r.hovered != nil && r.hovered.ID() == e.node.ID() {
			target = r.hoverScale
		}
		e.factor = common.Lerp(e.factor, target, r.smoothing)
		e.node.SetScale(common.Scale3(e.baseScale, e.factor))
	}
}

func (r *signRegistryImpl) find(n scene.Node) *signEntry {
	if n == nil {
		return nil
	}
	for _, e := range r.entries {
		if e.node.ID() == n.ID() {
			return e
		}
	}
	return nil
}
