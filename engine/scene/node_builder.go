package scene

import (
	"github.com/vitrine-gfx/vitrine-go/engine/material"
)

// NodeBuilderOption is a functional option for configuring a node.
// Use the With* functions to create options.
type NodeBuilderOption func(*node)

// WithPosition sets the node's initial local translation.
//
// Parameters:
//   - x, y, z: local position components
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithPosition(x, y, z float32) NodeBuilderOption {
	return func(n *node) {
		n.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the node's initial local rotation quaternion.
//
// Parameters:
//   - x, y, z, w: quaternion components
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithRotation(x, y, z, w float32) NodeBuilderOption {
	return func(n *node) {
		n.rotation = [4]float32{x, y, z, w}
	}
}

// WithScale sets the node's initial local scale.
//
// Parameters:
//   - x, y, z: scale factors along each axis
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithScale(x, y, z float32) NodeBuilderOption {
	return func(n *node) {
		n.scale = [3]float32{x, y, z}
	}
}

// WithMaterial assigns a single material slot, marking the node as a mesh.
//
// Parameters:
//   - m: the material to assign
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithMaterial(m material.Material) NodeBuilderOption {
	return func(n *node) {
		n.materials = []material.Material{m}
		n.multiMaterial = false
	}
}

// WithMaterials assigns an array material slot (multi-material mesh).
//
// Parameters:
//   - ms: the materials to assign
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithMaterials(ms ...material.Material) NodeBuilderOption {
	return func(n *node) {
		n.materials = ms
		n.multiMaterial = len(ms) > 1
	}
}

// WithBoundingRadius sets the node's pick-sphere radius, making it
// hit-testable by the picking package.
//
// Parameters:
//   - r: the bounding radius in world units
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithBoundingRadius(r float32) NodeBuilderOption {
	return func(n *node) {
		n.boundingRadius = r
	}
}
