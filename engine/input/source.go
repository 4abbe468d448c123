// Package input turns raw key, pointer, and wheel events into the buffered,
// frame-coherent intents the player controller consumes. Event sources only
// ever write the tracker's buffered state; simulation state is touched
// exclusively by whoever calls Consume once per frame.
package input

// Source is an event surface the tracker subscribes to. Passing nil to a
// setter unregisters the previous callback. Implementations deliver key
// repeats as additional down callbacks; the tracker edge-detects on its own.
type Source interface {
	// SetKeyDownCallback registers cb to be invoked when a key is pressed
	// (and possibly again for held-key repeats).
	//
	// Parameters:
	//   - cb: callback receiving the virtual key code, or nil to unregister
	SetKeyDownCallback(cb func(key Key))

	// SetKeyUpCallback registers cb to be invoked when a key is released.
	//
	// Parameters:
	//   - cb: callback receiving the virtual key code, or nil to unregister
	SetKeyUpCallback(cb func(key Key))

	// SetPointerDownCallback registers cb to be invoked when the primary
	// pointer button is pressed.
	//
	// Parameters:
	//   - cb: callback receiving a pointer id and position in device pixels,
	//     or nil to unregister
	SetPointerDownCallback(cb func(pointer int64, x, y float32))

	// SetPointerMoveCallback registers cb to be invoked when a pointer moves.
	//
	// Parameters:
	//   - cb: callback receiving a pointer id and position in device pixels,
	//     or nil to unregister
	SetPointerMoveCallback(cb func(pointer int64, x, y float32))

	// SetPointerUpCallback registers cb to be invoked when the primary
	// pointer button is released or the pointer is cancelled.
	//
	// Parameters:
	//   - cb: callback receiving the pointer id, or nil to unregister
	SetPointerUpCallback(cb func(pointer int64))

	// SetScrollCallback registers cb to be invoked on wheel input.
	//
	// Parameters:
	//   - cb: callback receiving the scroll delta in discrete steps (positive
	//     away from the user), or nil to unregister
	SetScrollCallback(cb func(delta float32))
}

// PollingSource is a Source that must be pumped once per frame to synthesize
// its events, used by platforms that expose polled state instead of native
// callbacks.
type PollingSource interface {
	Source

	// Poll samples the platform input state and fires callbacks for every
	// transition since the previous call. Must run on the platform's input
	// thread, once per frame, before the simulation consumes intents.
	Poll()
}
