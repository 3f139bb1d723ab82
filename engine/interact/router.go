package interact

import (
	"github.com/vitrine-gfx/vitrine-go/engine/scene"
)

// routerImpl is the implementation of the Router interface.
type routerImpl struct {
	signs   SignRegistry
	onClick func(scene.Node)
}

// Router classifies hit-tested pointer events. Moves over a sign set it as
// the hover and consume the event; moves over anything else clear the hover
// immediately (there is no memory of the last hovered sign). Clicks on a
// sign consume the event and invoke the click handler; clicks elsewhere are
// left to other collaborators.
type Router interface {
	// PointerMove routes a pointer-move event.
	//
	// Parameters:
	//   - ev: the hit-tested event
	PointerMove(ev *PointerEvent)

	// Click routes a click event.
	//
	// Parameters:
	//   - ev: the hit-tested event
	Click(ev *PointerEvent)
}

var _ Router = &routerImpl{}

// NewRouter creates a Router over a sign registry. The click handler is
// invoked with the clicked sign node; a nil handler makes sign clicks
// hover-only.
//
// Parameters:
//   - signs: the registry of interactive signs (must not be nil)
//   - onClick: callback invoked when a sign is clicked, or nil
//
// Returns:
//   - Router: the newly created router
func NewRouter(signs SignRegistry, onClick func(scene.Node)) Router {
	if signs == nil {
		panic("interact: NewRouter requires a non-nil SignRegistry")
	}
	return &routerImpl{signs: signs, onClick: onClick}
}

func (r *routerImpl) PointerMove(ev *PointerEvent) {
	if ev.Target != nil && r.signs.Contains(ev.Target) {
		r.signs.SetHovered(ev.Target)
		ev.StopPropagation()
		return
	}
	r.signs.ClearHovered()
}

func (r *routerImpl) Click(ev *PointerEvent) {
	if ev.Target == nil || !r.signs.Contains(ev.Target) {
		return
	}
	ev.StopPropagation()
	if r.onClick != nil {
		r.onClick(ev.Target)
	}
}
