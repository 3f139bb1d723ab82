package camera

// FlyToOption is a functional option for configuring a FlyTo transition.
type FlyToOption func(*flyToImpl)

// WithFlyToSpeed sets the progress rate in units per second.
// A speed of 2.0 completes a transition in half a second.
// Non-positive values are ignored.
//
// Parameters:
//   - speed: progress units per second
//
// Returns:
//   - FlyToOption: functional option to set the speed
func WithFlyToSpeed(speed float32) FlyToOption {
	return func(f *flyToImpl) {
		if speed > 0 {
			f.speed = speed
		}
	}
}

// WithFlyToOffset sets the framing vector added to the focus point to place
// the camera's end position.
//
// Parameters:
//   - x, y, z: the offset components
//
// Returns:
//   - FlyToOption: functional option to set the offset
func WithFlyToOffset(x, y, z float32) FlyToOption {
	return func(f *flyToImpl) {
		f.offset = [3]float32{x, y, z}
	}
}
