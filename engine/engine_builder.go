package engine

import (
	"time"

	"github.com/vitrine-gfx/vitrine-go/engine/animation"
	"github.com/vitrine-gfx/vitrine-go/engine/camera"
	"github.com/vitrine-gfx/vitrine-go/engine/config"
	"github.com/vitrine-gfx/vitrine-go/engine/window"
)

// EngineBuilderOption is a functional option for configuring an engine.
// Use the With* functions to create options.
type EngineBuilderOption func(e *engine)

// WithWindow attaches a window to the engine. Without one the engine runs
// headless: the tick loop still drives showcase updates, but no input or
// surface is available.
//
// Parameters:
//   - w: the window to attach
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithCamera supplies a camera instead of the default one built from
// preferences. The camera must have a controller attached.
//
// Parameters:
//   - cam: the camera to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(cam camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		if cam != nil {
			e.cam = cam
		}
	}
}

// WithFlyTo supplies a fly-to transition instead of the default one built
// from preferences.
//
// Parameters:
//   - f: the transition to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFlyTo(f camera.FlyTo) EngineBuilderOption {
	return func(e *engine) {
		if f != nil {
			e.flyTo = f
		}
	}
}

// WithPlayer supplies a clip player instead of the default one built from
// preferences.
//
// Parameters:
//   - p: the player to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPlayer(p animation.Player) EngineBuilderOption {
	return func(e *engine) {
		if p != nil {
			e.player = p
		}
	}
}

// WithPrefs sets the showcase preferences the engine builds its defaults
// from: master loop length, sign interaction parameters, fly-to framing, and
// orbit target bounds.
//
// Parameters:
//   - p: the preferences to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPrefs(p config.Prefs) EngineBuilderOption {
	return func(e *engine) {
		e.prefs = p
	}
}

// WithTickRate sets the engine tick rate in frames per second.
//
// Parameters:
//   - fps: target frames per second (ignored if <= 0)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps > 0 {
			e.engineTickRate = time.Second / time.Duration(fps)
		}
	}
}
