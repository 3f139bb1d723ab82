package scene

import (
	"github.com/vitrine-gfx/vitrine-go/engine/material"
)

// NormalizeMaterials replaces every single-slot lit material carrying a color
// texture with an unlit material wrapping the same texture, normalized to
// sRGB sampling, linear filtering, and no mipmaps. Multi-material meshes are
// skipped, as are untextured materials. Running the pass twice is a no-op:
// already-unlit materials are left alone.
//
// Parameters:
//   - sc: the scene to normalize
//
// Returns:
//   - int: the number of materials replaced
func NormalizeMaterials(sc Scene) int {
	count := 0
	sc.Traverse(func(n Node) bool {
		if n.MultiMaterial() {
			return true
		}
		m := n.Material()
		if m == nil || m.Kind() == material.KindUnlit || m.ColorTexture() == nil {
			return true
		}
		n.SetMaterial(material.Unlit(m))
		count++
		return true
	})
	return count
}
