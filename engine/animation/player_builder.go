package animation

// PlayerBuilderOption is a functional option for configuring a Player.
// Use the With* functions to create options.
type PlayerBuilderOption func(*playerImpl)

// WithMasterDuration sets the master loop length in seconds directly.
// Non-positive values are ignored.
//
// Parameters:
//   - seconds: the master loop duration
//
// Returns:
//   - PlayerBuilderOption: option function to apply
func WithMasterDuration(seconds float32) PlayerBuilderOption {
	return func(p *playerImpl) {
		if seconds > 0 {
			p.masterDuration = seconds
		}
	}
}

// WithMasterLoop sets the master loop length from authored content values:
// a frame count at a frame rate. Non-positive values are ignored.
//
// Parameters:
//   - frames: the authored loop length in frames
//   - fps: the authored frame rate
//
// Returns:
//   - PlayerBuilderOption: option function to apply
func WithMasterLoop(frames, fps float32) PlayerBuilderOption {
	return func(p *playerImpl) {
		if frames > 0 && fps > 0 {
			p.masterDuration = frames / fps
		}
	}
}
