package input

// Intents is one frame-coherent read of everything the player asked for
// since the previous read. Drag and zoom deltas are accumulated sums; the
// jump flag is a one-shot edge.
type Intents struct {
	// MoveX is the strafe intent in [-1, 1]: positive toward camera-right.
	MoveX float32
	// MoveZ is the forward intent in [-1, 1]: positive toward camera-forward.
	MoveZ float32
	// Running reports whether a run modifier key is held.
	Running bool
	// Jump is true exactly once per physical jump key press.
	Jump bool
	// DragX and DragY are the summed pointer-drag deltas in device pixels.
	DragX float32
	DragY float32
	// Zoom is the summed wheel delta in discrete scroll steps.
	Zoom float32
}

// Tracker buffers input events between frames and produces normalized
// intents on demand. All event handling only writes buffered state; nothing
// here touches simulation state.
type Tracker interface {
	// Consume returns the intents accumulated since the previous call and
	// resets the one-shot jump flag and the drag/zoom accumulators. Held
	// keys persist across calls. The combined move vector is normalized, so
	// diagonal input is never faster than axis-aligned input.
	//
	// Returns:
	//   - Intents: one consistent snapshot for the frame
	Consume() Intents

	// Detach unregisters every callback from the source. Idempotent; after
	// the first call no further events are delivered.
	Detach()
}
