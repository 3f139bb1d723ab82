package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlitNormalizesTextureSettings(t *testing.T) {
	tex := &Texture{
		Name:            "albedo",
		ColorSpace:      ColorSpaceLinear,
		MinFilter:       FilterNearest,
		MagFilter:       FilterNearest,
		GenerateMipmaps: true,
	}
	src := NewMaterial(
		WithName("desk"),
		WithBaseColor([4]float32{0.8, 0.7, 0.6, 1}),
		WithColorTexture(tex),
	)

	got := Unlit(src)

	assert.Equal(t, "desk", got.Name())
	assert.Equal(t, KindUnlit, got.Kind())
	assert.Equal(t, src.BaseColor(), got.BaseColor())

	// The same texture object is shared, with normalized sampling settings
	// and a pending GPU refresh.
	require.Same(t, tex, got.ColorTexture())
	assert.Equal(t, ColorSpaceSRGB, tex.ColorSpace)
	assert.Equal(t, FilterLinear, tex.MinFilter)
	assert.Equal(t, FilterLinear, tex.MagFilter)
	assert.False(t, tex.GenerateMipmaps)
	assert.True(t, tex.NeedsUpload)

	// The source material keeps its lit kind.
	assert.Equal(t, KindLit, src.Kind())
}

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()
	assert.Equal(t, KindLit, m.Kind())
	assert.Equal(t, [4]float32{1, 1, 1, 1}, m.BaseColor())
	assert.Nil(t, m.ColorTexture())
}
