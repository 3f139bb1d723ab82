// package picking resolves cursor coordinates to scene nodes by casting a
// ray from the camera through the cursor and testing it against per-node
// bounding spheres. It supplies the hit-tested targets the pointer router
// consumes.
package picking

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/vitrine-gfx/vitrine-go/common"
	"github.com/vitrine-gfx/vitrine-go/engine/camera"
	"github.com/vitrine-gfx/vitrine-go/engine/scene"
)

// pickerImpl is the implementation of the Picker interface.
// The mutex guards scene and viewport state: resize callbacks write the
// viewport from the window thread while the frame loop picks.
type pickerImpl struct {
	mu     *sync.Mutex
	cam    camera.Camera
	sc     scene.Scene
	width  int
	height int
}

// Picker hit-tests cursor positions against a scene. Only nodes with a
// positive bounding radius participate; the nearest intersection along the
// ray wins. Safe for concurrent use.
type Picker interface {
	// SetViewport updates the pixel dimensions used to convert cursor
	// coordinates into normalized device coordinates.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	SetViewport(width, height int)

	// SetScene replaces the scene being hit-tested.
	//
	// Parameters:
	//   - sc: the new scene, or nil to disable picking
	SetScene(sc scene.Scene)

	// Pick returns the nearest hit-testable node under the cursor, or nil.
	//
	// Parameters:
	//   - x, y: cursor position in pixels, origin top-left
	//
	// Returns:
	//   - scene.Node: the frontmost hit node, or nil
	Pick(x, y float32) scene.Node
}

var _ Picker = &pickerImpl{}

// NewPicker creates a Picker over a camera and scene.
//
// Parameters:
//   - cam: the camera providing the inverse view-projection matrix (must not be nil)
//   - sc: the scene to hit-test, may be nil until a scene is loaded
//   - width, height: initial viewport size in pixels
//
// Returns:
//   - Picker: the newly created picker
func NewPicker(cam camera.Camera, sc scene.Scene, width, height int) Picker {
	if cam == nil {
		panic("picking: NewPicker requires a non-nil Camera")
	}
	return &pickerImpl{
		mu:     &sync.Mutex{},
		cam:    cam,
		sc:     sc,
		width:  width,
		height: height,
	}
}

func (p *pickerImpl) SetViewport(width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width = width
	p.height = height
}

func (p *pickerImpl) SetScene(sc scene.Scene) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sc = sc
}

func (p *pickerImpl) Pick(x, y float32) scene.Node {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sc == nil || p.width <= 0 || p.height <= 0 {
		return nil
	}

	origin, dir, ok := p.ray(x, y)
	if !ok {
		return nil
	}

	var best scene.Node
	bestT := math32.Inf(1)
	p.sc.Traverse(func(n scene.Node) bool {
		r := n.BoundingRadius()
		if r <= 0 {
			return true
		}
		if t, hit := raySphere(origin, dir, n.WorldPosition(), r); hit && t < bestT {
			bestT = t
			best = n
		}
		return true
	})
	return best
}

// ray unprojects the cursor through the near and far clip planes into a
// world-space origin and direction.
// Caller must hold the mutex.
func (p *pickerImpl) ray(x, y float32) (origin, dir [3]float32, ok bool) {
	ndcX := 2*x/float32(p.width) - 1
	ndcY := 1 - 2*y/float32(p.height)

	inv := p.cam.InverseViewProjectionMatrix()
	near, okNear := common.TransformPoint(inv[:], [3]float32{ndcX, ndcY, 0})
	far, okFar := common.TransformPoint(inv[:], [3]float32{ndcX, ndcY, 1})
	if !okNear || !okFar {
		return origin, dir, false
	}
	return near, common.Normalize3(common.Sub3(far, near)), true
}

// raySphere intersects a ray with a sphere, returning the distance along the
// ray to the nearest intersection in front of the origin.
func raySphere(origin, dir, center [3]float32, radius float32) (float32, bool) {
	oc := common.Sub3(center, origin)
	tca := common.Dot3(oc, dir)
	d2 := common.Dot3(oc, oc) - tca*tca
	r2 := radius * radius
	if d2 > r2 {
		return 0, false
	}
	thc := math32.Sqrt(r2 - d2)
	t := tca - thc
	if t < 0 {
		t = tca + thc // origin inside the sphere
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
