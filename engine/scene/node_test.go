package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine-gfx/vitrine-go/engine/material"
)

func TestFindReturnsFirstDepthFirstMatch(t *testing.T) {
	root := NewNode("Root")
	branchA := NewNode("BranchA")
	branchA.AddChild(NewNode("Leaf", WithPosition(1, 0, 0)))
	branchB := NewNode("BranchB")
	branchB.AddChild(NewNode("Leaf", WithPosition(2, 0, 0)))
	root.AddChild(branchA)
	root.AddChild(branchB)

	sc := NewScene("dup", root)

	n := sc.Find("Leaf")
	require.NotNil(t, n)
	assert.Equal(t, [3]float32{1, 0, 0}, n.Position())

	assert.Nil(t, sc.Find("Missing"))
}

func TestNodeNamesTraversalOrder(t *testing.T) {
	root := NewNode("Root")
	a := NewNode("A")
	a.AddChild(NewNode("A1"))
	root.AddChild(a)
	root.AddChild(NewNode("B"))

	sc := NewScene("tree", root)
	assert.Equal(t, []string{"Root", "A", "A1", "B"}, sc.NodeNames())
}

func TestTraverseEarlyStop(t *testing.T) {
	root := NewNode("Root")
	root.AddChild(NewNode("A"))
	root.AddChild(NewNode("B"))
	sc := NewScene("tree", root)

	var visited []string
	sc.Traverse(func(n Node) bool {
		visited = append(visited, n.Name())
		return n.Name() != "A"
	})
	assert.Equal(t, []string{"Root", "A"}, visited)
}

func TestWorldPositionComposesAncestors(t *testing.T) {
	root := NewNode("Root", WithPosition(1, 0, 0))
	mid := NewNode("Mid", WithPosition(0, 2, 0), WithScale(2, 2, 2))
	leaf := NewNode("Leaf", WithPosition(0, 0, 3))
	root.AddChild(mid)
	mid.AddChild(leaf)

	// Leaf local offset is scaled by the mid node before translation.
	wp := leaf.WorldPosition()
	assert.InDelta(t, 1, wp[0], 1e-5)
	assert.InDelta(t, 2, wp[1], 1e-5)
	assert.InDelta(t, 6, wp[2], 1e-5)
}

func TestSetMaterialIgnoredOnMultiMaterial(t *testing.T) {
	a := material.NewMaterial(material.WithName("a"))
	b := material.NewMaterial(material.WithName("b"))
	n := NewNode("Multi", WithMaterials(a, b))
	require.True(t, n.MultiMaterial())

	n.SetMaterial(material.NewMaterial(material.WithName("c")))

	require.Len(t, n.Materials(), 2)
	assert.Equal(t, "a", n.Materials()[0].Name())
}

func TestNewScenePanicsOnNilRoot(t *testing.T) {
	assert.Panics(t, func() { NewScene("broken", nil) })
}

func TestNodeDefaults(t *testing.T) {
	n := NewNode("Bare")
	assert.Equal(t, [3]float32{0, 0, 0}, n.Position())
	assert.Equal(t, [4]float32{0, 0, 0, 1}, n.Rotation())
	assert.Equal(t, [3]float32{1, 1, 1}, n.Scale())
	assert.Nil(t, n.Material())
	assert.False(t, n.MultiMaterial())
	assert.Equal(t, float32(0), n.BoundingRadius())
}
