package scene

import (
	"sync/atomic"

	"github.com/vitrine-gfx/vitrine-go/common"
	"github.com/vitrine-gfx/vitrine-go/engine/material"
)

// nodeCount is an atomic counter used to generate unique ids for each node instance.
var nodeCount atomic.Uint64

// node is the implementation of the Node interface.
// Nodes are owned exclusively by the frame loop once the scene is installed;
// transform reads and writes are not synchronized.
type node struct {
	id   uint64
	name string

	parent   Node
	children []Node

	position [3]float32
	rotation [4]float32
	scale    [3]float32

	materials     []material.Material
	multiMaterial bool

	boundingRadius float32
}

// Node defines the interface for a single entry in the scene graph: a named,
// uniquely-identified transform with optional material slot and children.
// The engine never creates or destroys nodes after load; it only reads and
// mutates transform and material fields.
type Node interface {
	// ID returns the node's unique identifier.
	//
	// Returns:
	//   - uint64: the node id
	ID() uint64

	// Name returns the node's name from the source asset.
	//
	// Returns:
	//   - string: the node name
	Name() string

	// Parent returns the node's parent, or nil for the root.
	//
	// Returns:
	//   - Node: the parent node or nil
	Parent() Node

	// Children returns the node's direct children in insertion order.
	//
	// Returns:
	//   - []Node: the child nodes
	Children() []Node

	// AddChild appends a child node and sets its parent to this node.
	//
	// Parameters:
	//   - child: the node to attach
	AddChild(child Node)

	// Position returns the node's local translation.
	//
	// Returns:
	//   - [3]float32: the local position
	Position() [3]float32

	// SetPosition sets the node's local translation.
	//
	// Parameters:
	//   - p: the local position
	SetPosition(p [3]float32)

	// Rotation returns the node's local rotation quaternion (x, y, z, w).
	//
	// Returns:
	//   - [4]float32: the local rotation
	Rotation() [4]float32

	// SetRotation sets the node's local rotation quaternion (x, y, z, w).
	//
	// Parameters:
	//   - q: the local rotation
	SetRotation(q [4]float32)

	// Scale returns the node's local per-axis scale.
	//
	// Returns:
	//   - [3]float32: the local scale
	Scale() [3]float32

	// SetScale sets the node's local per-axis scale.
	//
	// Parameters:
	//   - s: the local scale
	SetScale(s [3]float32)

	// Material returns the node's material when it carries exactly one.
	// Returns nil for non-mesh nodes and for multi-material meshes.
	//
	// Returns:
	//   - material.Material: the single material or nil
	Material() material.Material

	// Materials returns all materials assigned to the node.
	//
	// Returns:
	//   - []material.Material: the material slots (empty for non-mesh nodes)
	Materials() []material.Material

	// MultiMaterial reports whether the node carries an array material
	// assignment (more than one slot).
	//
	// Returns:
	//   - bool: true if the node has multiple material slots
	MultiMaterial() bool

	// SetMaterial replaces the node's single material slot.
	// No-op on multi-material nodes.
	//
	// Parameters:
	//   - m: the replacement material
	SetMaterial(m material.Material)

	// BoundingRadius returns the node's pick-sphere radius around its world
	// position. Zero means the node is not hit-testable.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// WorldPosition computes the node's position in world space by composing
	// the transforms of all ancestors.
	//
	// Returns:
	//   - [3]float32: the world-space position
	WorldPosition() [3]float32

	// Traverse walks the subtree rooted at this node depth-first in
	// pre-order, calling visit for each node. Returning false from visit
	// stops the walk.
	//
	// Parameters:
	//   - visit: callback invoked per node; return false to stop
	//
	// Returns:
	//   - bool: false if the walk was stopped early
	Traverse(visit func(Node) bool) bool
}

var _ Node = &node{}

// NewNode creates a new scene node with a unique id and the provided options.
// Defaults to identity transform with no material.
//
// Parameters:
//   - name: the node name
//   - options: functional options to configure the node
//
// Returns:
//   - Node: the newly created node
func NewNode(name string, options ...NodeBuilderOption) Node {
	n := &node{
		id:       nodeCount.Add(1),
		name:     name,
		rotation: [4]float32{0, 0, 0, 1},
		scale:    [3]float32{1, 1, 1},
	}
	for _, opt := range options {
		opt(n)
	}
	return n
}

func (n *node) ID() uint64 {
	return n.id
}

func (n *node) Name() string {
	return n.name
}

func (n *node) Parent() Node {
	return n.parent
}

func (n *node) Children() []Node {
	return n.children
}

func (n *node) AddChild(child Node) {
	if c, ok := child.(*node); ok {
		c.parent = n
	}
	n.children = append(n.children, child)
}

func (n *node) Position() [3]float32 {
	return n.position
}

func (n *node) SetPosition(p [3]float32) {
	n.position = p
}

func (n *node) Rotation() [4]float32 {
	return n.rotation
}

func (n *node) SetRotation(q [4]float32) {
	n.rotation = q
}

func (n *node) Scale() [3]float32 {
	return n.scale
}

func (n *node) SetScale(s [3]float32) {
	n.scale = s
}

func (n *node) Material() material.Material {
	if n.multiMaterial || len(n.materials) == 0 {
		return nil
	}
	return n.materials[0]
}

func (n *node) Materials() []material.Material {
	return n.materials
}

func (n *node) MultiMaterial() bool {
	return n.multiMaterial
}

func (n *node) SetMaterial(m material.Material) {
	if n.multiMaterial {
		return
	}
	n.materials = []material.Material{m}
}

func (n *node) BoundingRadius() float32 {
	return n.boundingRadius
}

func (n *node) WorldPosition() [3]float32 {
	var local, world [16]float32
	common.Identity(world[:])

	// Compose ancestor transforms root-first.
	chain := make([]Node, 0, 8)
	for cur := Node(n); cur != nil; cur = cur.Parent() {
		chain = append(chain, cur)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		c := chain[i]
		common.ComposeTRS(local[:], c.Position(), c.Rotation(), c.Scale())
		common.Mul4(world[:], world[:], local[:])
	}
	return [3]float32{world[12], world[13], world[14]}
}

func (n *node) Traverse(visit func(Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, c := range n.children {
		if !c.Traverse(visit) {
			return false
		}
	}
	return true
}
