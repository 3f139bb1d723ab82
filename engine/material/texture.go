package material

// ColorSpace identifies the color space a texture's pixel data should be
// sampled in.
type ColorSpace int

const (
	// ColorSpaceLinear samples the texture without gamma conversion.
	ColorSpaceLinear ColorSpace = iota

	// ColorSpaceSRGB samples the texture as standard display (sRGB) data.
	ColorSpaceSRGB
)

// Filter identifies a texture minification/magnification filter mode.
type Filter int

const (
	// FilterNearest selects the nearest texel without interpolation.
	FilterNearest Filter = iota

	// FilterLinear interpolates between neighboring texels.
	FilterLinear
)

// Texture describes a color texture's sampling configuration as consumed by
// the render collaborator. The pixel data itself is owned by the asset
// collaborator; this type only carries the settings the engine is allowed
// to rewrite.
type Texture struct {
	// Name is the texture's identifier from the source asset.
	Name string

	// ColorSpace is the color space the texture should be sampled in.
	ColorSpace ColorSpace

	// MinFilter is the minification filter mode.
	MinFilter Filter

	// MagFilter is the magnification filter mode.
	MagFilter Filter

	// GenerateMipmaps requests GPU-side mipmap generation on upload.
	GenerateMipmaps bool

	// NeedsUpload flags the texture for a GPU-side refresh after its
	// settings changed. Cleared by the render collaborator once consumed.
	NeedsUpload bool
}
