package input

// TrackerOption is a functional option for configuring a Tracker.
type TrackerOption func(*trackerImpl)

// WithMoveKeys overrides the default WASD movement bindings.
//
// Parameters:
//   - forward: key producing forward intent
//   - backward: key producing backward intent
//   - left: key producing leftward intent
//   - right: key producing rightward intent
//
// Returns:
//   - TrackerOption: functional option to set the movement keys
func WithMoveKeys(forward, backward, left, right Key) TrackerOption {
	return func(t *trackerImpl) {
		t.forwardKey = forward
		t.backwardKey = backward
		t.leftKey = left
		t.rightKey = right
	}
}

// WithJumpKey overrides the default space jump binding.
//
// Parameters:
//   - key: key arming the one-shot jump flag
//
// Returns:
//   - TrackerOption: functional option to set the jump key
func WithJumpKey(key Key) TrackerOption {
	return func(t *trackerImpl) {
		t.jumpKey = key
	}
}

// WithRunKeys overrides the default shift run modifiers.
//
// Parameters:
//   - keys: keys that raise the run flag while held
//
// Returns:
//   - TrackerOption: functional option to set the run keys
func WithRunKeys(keys ...Key) TrackerOption {
	return func(t *trackerImpl) {
		t.runKeys = keys
	}
}
