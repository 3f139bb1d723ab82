// package interact implements the hover/click behavior of interactive "sign"
// nodes: a registry applying per-sign scale springs every frame, and a
// pointer router that classifies hit-tested events into hover and fly-to
// actions.
package interact

import (
	"github.com/vitrine-gfx/vitrine-go/engine/scene"
)

// PointerEvent is a pointer-move or click that has already been hit-tested
// by the windowing/picking collaborator. Target is the frontmost node under
// the cursor, or nil when the pointer is over empty space.
type PointerEvent struct {
	// Target is the hit-tested node, or nil.
	Target scene.Node

	stopped bool
}

// StopPropagation marks the event as consumed so it is not delivered to
// occluded objects behind the target.
func (e *PointerEvent) StopPropagation() {
	e.stopped = true
}

// PropagationStopped reports whether StopPropagation was called.
//
// Returns:
//   - bool: true if the event was consumed
func (e *PointerEvent) PropagationStopped() bool {
	return e.stopped
}
