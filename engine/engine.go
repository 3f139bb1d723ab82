package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/vitrine-gfx/vitrine-go/engine/animation"
	"github.com/vitrine-gfx/vitrine-go/engine/camera"
	"github.com/vitrine-gfx/vitrine-go/engine/config"
	"github.com/vitrine-gfx/vitrine-go/engine/interact"
	"github.com/vitrine-gfx/vitrine-go/engine/picking"
	"github.com/vitrine-gfx/vitrine-go/engine/scene"
	"github.com/vitrine-gfx/vitrine-go/engine/window"
)

// pointerSample is a raw cursor event queued by window callbacks and drained
// at the top of the next tick, where it is hit-tested and routed. Events are
// processed in arrival order, so the last one before a frame wins.
type pointerSample struct {
	x, y  float32
	click bool
}

// engine implements the Engine interface.
// Owns the showcase frame loop and all per-frame mutable state: the clip
// player, the sign springs, and the fly-to transition. That state is only
// ever touched from the tick goroutine.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	prefs config.Prefs

	cam    camera.Camera
	ctrl   camera.CameraController
	picker picking.Picker
	flyTo  camera.FlyTo
	player animation.Player

	// stateMu guards the swap of scene-session state in LoadScene against a
	// concurrently running tick loop. Within a session, the tick goroutine
	// is the sole owner.
	stateMu sync.Mutex
	sc      scene.Scene
	signs   interact.SignRegistry
	router  interact.Router

	pointerEvents chan pointerSample

	// loadPool runs the one-time scene-ready passes off the caller.
	loadPool worker.DynamicWorkerPool
	taskID   int

	engineTickRate time.Duration
	frameCallback  func(deltaTime float32)
}

// Engine is the main entry point for the showcase runtime. It owns the tick
// loop that drives clip playback, sign hover springs, and camera fly-to
// transitions against a loaded scene, and routes window input into them.
// Rendering is delegated to an external collaborator via the frame callback
// and the window's surface descriptor.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance or nil
	Window() window.Window

	// Camera returns the showcase camera.
	//
	// Returns:
	//   - camera.Camera: the camera instance
	Camera() camera.Camera

	// Scene returns the currently loaded scene, or nil before LoadScene.
	//
	// Returns:
	//   - scene.Scene: the loaded scene or nil
	Scene() scene.Scene

	// Player returns the loop-synced clip player.
	//
	// Returns:
	//   - animation.Player: the player instance
	Player() animation.Player

	// Signs returns the interactive sign registry for the loaded scene.
	// Returns nil before LoadScene.
	//
	// Returns:
	//   - interact.SignRegistry: the sign registry or nil
	Signs() interact.SignRegistry

	// FlyTo returns the camera fly-to transition.
	//
	// Returns:
	//   - camera.FlyTo: the transition instance
	FlyTo() camera.FlyTo

	// LoadScene installs a scene and its animation clips as the active
	// session. The one-time scene-ready passes run first: material
	// normalization, track retargeting, and sign scale-track filtering.
	// Any previous session's playback state is fully stopped before the new
	// one is installed. Passing no clips is valid; playback then idles.
	//
	// Parameters:
	//   - sc: the loaded scene graph (must not be nil)
	//   - clips: the scene's animation clips, may be empty
	LoadScene(sc scene.Scene, clips []*animation.Clip)

	// Update runs one frame of showcase logic: advance clip playback, ease
	// sign scale springs, then either advance the fly-to transition or
	// clamp the orbit target, and finally recompute camera matrices.
	// No-op until a scene is loaded. Called by the tick loop; exposed for
	// external frame drivers.
	//
	// Parameters:
	//   - deltaTime: elapsed wall-clock time since the last frame in seconds
	Update(deltaTime float32)

	// PointerMove queues a cursor position for hit-testing and hover
	// routing on the next tick.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	PointerMove(x, y float32)

	// Click queues a click position for hit-testing and fly-to routing on
	// the next tick.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	Click(x, y float32)

	// SetTickRate sets the engine tick rate in frames per second.
	// The frame update will run at this rate.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetFrameCallback registers the function called after each frame's
	// showcase update. The render collaborator hooks here.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetFrameCallback(callback func(deltaTime float32))

	// Run starts the tick loop and blocks in the window message loop until
	// the window closes.
	Run()

	// Quit signals the tick loop to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Camera, controller, fly-to, and player are built from the configured
// preferences unless supplied explicitly.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		pointerEvents:   make(chan pointerSample, 64),
		prefs:           config.Default(),
		engineTickRate:  time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.cam == nil {
		e.cam = camera.NewCamera(
			camera.WithController(camera.NewCameraController(
				camera.WithTargetBoundsX(e.prefs.TargetMinX, e.prefs.TargetMaxX),
				camera.WithTargetBoundsY(e.prefs.TargetMinY, e.prefs.TargetMaxY),
			)),
		)
	}
	e.ctrl = e.cam.Controller()
	if e.ctrl == nil {
		panic("engine: NewEngine requires a camera with an attached controller")
	}

	if e.flyTo == nil {
		off := e.prefs.FlyToOffset
		e.flyTo = camera.NewFlyTo(
			camera.WithFlyToOffset(off[0], off[1], off[2]),
			camera.WithFlyToSpeed(e.prefs.FlyToSpeed),
		)
	}
	if e.player == nil {
		e.player = animation.NewPlayer(
			animation.WithMasterLoop(e.prefs.MasterFrames, e.prefs.MasterFPS),
		)
	}

	width, height := 0, 0
	if e.window != nil {
		width, height = e.window.Width(), e.window.Height()
	}
	e.picker = picking.NewPicker(e.cam, nil, width, height)

	e.loadPool = worker.NewDynamicWorkerPool(2, 16, 1*time.Second)

	if e.window != nil {
		e.wireWindow()
	}

	return e
}

// wireWindow connects window input to the showcase: cursor moves and clicks
// feed the pointer queue, middle-drag orbits, scroll zooms, and resizes keep
// the camera aspect and picker viewport current.
func (e *engine) wireWindow() {
	e.window.SetPointerMoveCallback(e.PointerMove)
	e.window.SetClickCallback(e.Click)
	e.window.SetScrollCallback(func(delta float32) {
		e.ctrl.Zoom(delta)
	})
	e.window.SetDragCallback(func(dx, dy float32) {
		sens := e.ctrl.MouseSensitivity()
		e.ctrl.SetAzimuth(e.ctrl.Azimuth() - dx*sens)
		e.ctrl.SetElevation(e.ctrl.Elevation() + dy*sens)
	})
	e.window.SetResizeCallback(func(width, height int) {
		if height > 0 {
			e.cam.SetAspect(float32(width) / float32(height))
		}
		e.picker.SetViewport(width, height)
	})
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.cam
}

func (e *engine) Scene() scene.Scene {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.sc
}

func (e *engine) Player() animation.Player {
	return e.player
}

func (e *engine) Signs() interact.SignRegistry {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.signs
}

func (e *engine) FlyTo() camera.FlyTo {
	return e.flyTo
}

func (e *engine) LoadScene(sc scene.Scene, clips []*animation.Clip) {
	if sc == nil {
		panic("engine: LoadScene requires a non-nil scene")
	}

	signs := interact.NewSignRegistry(
		interact.WithMarker(e.prefs.SignMarker),
		interact.WithHoverScale(e.prefs.HoverScale),
		interact.WithSmoothing(e.prefs.HoverSmoothing),
	)

	// One-time scene-ready passes. Material normalization and track
	// retargeting touch disjoint data, so they run as parallel pool tasks.
	var wg sync.WaitGroup
	var normalized, retargeted, filtered int

	wg.Add(1)
	e.submitTask(func() {
		defer wg.Done()
		normalized = scene.NormalizeMaterials(sc)
	})

	if len(clips) > 0 {
		wg.Add(1)
		e.submitTask(func() {
			defer wg.Done()
			retargeted = animation.RetargetClips(clips, sc)
			filtered = animation.FilterSignScaleTracks(clips, signs.Marker())
		})
	}
	wg.Wait()

	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	// Bind fully stops the previous session's playback before installing
	// the new action set, so no stale cursors keep advancing hidden clips.
	e.player.Bind(sc, clips)

	registered := signs.RegisterScene(sc)
	e.signs = signs
	e.router = interact.NewRouter(signs, e.onSignClick)
	e.sc = sc
	e.picker.SetScene(sc)

	log.Printf("engine: scene %q ready: %d materials normalized, %d tracks retargeted, %d scale tracks dropped, %d signs",
		sc.Name(), normalized, retargeted, filtered, registered)
}

// onSignClick starts (or redirects) the fly-to transition toward the clicked
// sign's world position.
func (e *engine) onSignClick(n scene.Node) {
	e.flyTo.Start(e.ctrl, n.WorldPosition())
}

func (e *engine) Update(deltaTime float32) {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	// Defer all showcase logic until a scene is installed.
	if e.sc == nil {
		return
	}

	e.drainPointerEvents()

	e.player.Update(deltaTime)
	e.signs.Update()

	if e.flyTo.Active() {
		e.flyTo.Update(e.ctrl, deltaTime)
	} else {
		e.ctrl.ClampTarget()
	}

	e.cam.Update()
}

// drainPointerEvents hit-tests and routes every queued cursor event in
// arrival order. Caller must hold stateMu.
func (e *engine) drainPointerEvents() {
	for {
		select {
		case s := <-e.pointerEvents:
			ev := &interact.PointerEvent{Target: e.picker.Pick(s.x, s.y)}
			if s.click {
				e.router.Click(ev)
			} else {
				e.router.PointerMove(ev)
			}
		default:
			return
		}
	}
}

func (e *engine) PointerMove(x, y float32) {
	e.enqueuePointer(pointerSample{x: x, y: y})
}

func (e *engine) Click(x, y float32) {
	e.enqueuePointer(pointerSample{x: x, y: y, click: true})
}

// enqueuePointer queues a pointer sample without blocking the window
// callback thread; when the queue is full the oldest sample is dropped.
func (e *engine) enqueuePointer(s pointerSample) {
	select {
	case e.pointerEvents <- s:
	default:
		select {
		case <-e.pointerEvents:
		default:
		}
		e.pointerEvents <- s
	}
}

// submitTask wraps a closure as a pool task with a unique id.
func (e *engine) submitTask(do func()) {
	e.taskID++
	e.loadPool.SubmitTask(worker.Task{
		ID: e.taskID,
		Do: func() (any, error) {
			do()
			return nil, nil
		},
	})
}

func (e *engine) Run() {
	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
	} else {
		<-e.quitChannel
	}
}

// Quit signals the tick goroutine to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the tick and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.running = true
	e.wg.Add(2)
	go e.handleTick()
	go e.handleQuit()
}

// handleTick runs the fixed-rate frame loop in its own goroutine.
// Fires the showcase update and frame callback at the configured tick rate
// and listens for dynamic rate changes via tickRateChannel. Exits when the
// quit channel is closed.
func (e *engine) handleTick() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.Update(dt)

			if e.frameCallback != nil {
				e.frameCallback(dt)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

// SetFrameCallback registers the function called after each frame update.
func (e *engine) SetFrameCallback(callback func(deltaTime float32)) {
	e.frameCallback = callback
}
