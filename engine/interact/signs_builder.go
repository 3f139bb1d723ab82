package interact

// SignRegistryOption is a functional option for configuring a SignRegistry.
type SignRegistryOption func(*signRegistryImpl)

// WithMarker sets the name substring that marks a node as a sign.
//
// Parameters:
//   - marker: the marker substring
//
// Returns:
//   - SignRegistryOption: functional option to set the marker
func WithMarker(marker string) SignRegistryOption {
	return func(r *signRegistryImpl) {
		if marker != "" {
			r.marker = marker
		}
	}
}

// WithHoverScale sets the scale multiplier hovered signs ease toward.
//
// Parameters:
//   - scale: the hover scale multiplier
//
// Returns:
//   - SignRegistryOption: functional option to set the hover scale
func WithHoverScale(scale float32) SignRegistryOption {
	return func(r *signRegistryImpl) {
		if scale > 0 {
			r.hoverScale = scale
		}
	}
}

// WithSmoothing sets the per-frame exponential smoothing factor in (0, 1].
//
// Parameters:
//   - smoothing: the smoothing factor
//
// Returns:
//   - SignRegistryOption: functional option to set the smoothing
func WithSmoothing(smoothing float32) SignRegistryOption {
	return func(r *signRegistryImpl) {
		if smoothing > 0 && smoothing <= 1 {
			r.smoothing = smoothing
		}
	}
}
