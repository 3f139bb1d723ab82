package material

// Kind identifies the shading model a material uses.
type Kind int

const (
	// KindLit is a physically-lit material as authored in the source asset.
	KindLit Kind = iota

	// KindUnlit is the normalized flat-shaded material the showcase renders
	// with. Unlit materials output their color texture directly.
	KindUnlit
)

// material is the implementation of the Material interface.
type material struct {
	name         string
	kind         Kind
	baseColor    [4]float32
	colorTexture *Texture
}

// Material defines the interface for a surface material as the showcase core
// sees it: a shading kind, a base color, and an optional color texture.
// GPU resource bindings are owned by the render collaborator and are not
// part of this interface.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Kind retrieves the shading model of the material.
	//
	// Returns:
	//   - Kind: KindLit or KindUnlit
	Kind() Kind

	// BaseColor retrieves the RGBA base color of the material.
	//
	// Returns:
	//   - [4]float32: the base color as RGBA values
	BaseColor() [4]float32

	// ColorTexture retrieves the color texture reference, or nil if the
	// material is untextured.
	//
	// Returns:
	//   - *Texture: the color texture, or nil
	ColorTexture() *Texture
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided
// options. Defaults to a white lit material with no texture.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		kind:      KindLit,
		baseColor: [4]float32{1, 1, 1, 1},
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Unlit wraps a lit material's color texture in a new unlit material carrying
// the normalized sampling settings: sRGB color space, linear min/mag
// filtering, no mipmap generation. The texture is flagged for a GPU-side
// refresh. The source material is left untouched apart from its shared
// texture's settings.
//
// Parameters:
//   - src: the lit material to normalize (must carry a color texture)
//
// Returns:
//   - Material: the unlit replacement referencing the same texture
func Unlit(src Material) Material {
	tex := src.ColorTexture()
	tex.ColorSpace = ColorSpaceSRGB
	tex.MinFilter = FilterLinear
	tex.MagFilter = FilterLinear
	tex.GenerateMipmaps = false
	tex.NeedsUpload = true

	return NewMaterial(
		WithName(src.Name()),
		WithKind(KindUnlit),
		WithBaseColor(src.BaseColor()),
		WithColorTexture(tex),
	)
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Kind() Kind {
	return m.kind
}

func (m *material) BaseColor() [4]float32 {
	return m.baseColor
}

func (m *material) ColorTexture() *Texture {
	return m.colorTexture
}
