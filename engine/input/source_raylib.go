package input

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylibKeys maps virtual key codes onto raylib keyboard codes for the keys
// the tracker can be bound to.
var raylibKeys = map[Key]int32{
	KeyW:          rl.KeyW,
	KeyA:          rl.KeyA,
	KeyS:          rl.KeyS,
	KeyD:          rl.KeyD,
	KeySpace:      rl.KeySpace,
	KeyLeftShift:  rl.KeyLeftShift,
	KeyRightShift: rl.KeyRightShift,
	KeyEscape:     rl.KeyEscape,
}

type raylibSource struct {
	mu *sync.Mutex

	keyDown     func(key Key)
	keyUp       func(key Key)
	pointerDown func(pointer int64, x, y float32)
	pointerMove func(pointer int64, x, y float32)
	pointerUp   func(pointer int64)
	scroll      func(delta float32)

	prevKeys     map[Key]bool
	pointerHeld  bool
	lastX, lastY float32
}

// Ensure raylibSource implements PollingSource interface.
var _ PollingSource = &raylibSource{}

// NewRaylibSource creates a PollingSource backed by raylib's polled input
// state. raylib has no native callbacks, so Poll edge-detects key and mouse
// transitions against the previous frame and synthesizes events from them.
// The primary mouse button drives the pointer stream under a single pointer
// id.
//
// Returns:
//   - PollingSource: the newly created source
func NewRaylibSource() PollingSource {
	return &raylibSource{
		mu:       &sync.Mutex{},
		prevKeys: make(map[Key]bool),
	}
}

func (s *raylibSource) SetKeyDownCallback(cb func(key Key)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyDown = cb
}

func (s *raylibSource) SetKeyUpCallback(cb func(key Key)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyUp = cb
}

func (s *raylibSource) SetPointerDownCallback(cb func(pointer int64, x, y float32)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pointerDown = cb
}

func (s *raylibSource) SetPointerMoveCallback(cb func(pointer int64, x, y float32)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pointerMove = cb
}

func (s *raylibSource) SetPointerUpCallback(cb func(pointer int64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pointerUp = cb
}

func (s *raylibSource) SetScrollCallback(cb func(delta float32)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scroll = cb
}

func (s *raylibSource) Poll() {
	s.mu.Lock()
	keyDown := s.keyDown
	keyUp := s.keyUp
	pointerDown := s.pointerDown
	pointerMove := s.pointerMove
	pointerUp := s.pointerUp
	scroll := s.scroll
	s.mu.Unlock()

	for key, code := range raylibKeys {
		down := rl.IsKeyDown(code)
		if down == s.prevKeys[key] {
			continue
		}
		s.prevKeys[key] = down
		if down {
			if keyDown != nil {
				keyDown(key)
			}
		} else if keyUp != nil {
			keyUp(key)
		}
	}

	pos := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		s.pointerHeld = true
		s.lastX, s.lastY = pos.X, pos.Y
		if pointerDown != nil {
			pointerDown(0, pos.X, pos.Y)
		}
	}
	if pos.X != s.lastX || pos.Y != s.lastY {
		s.lastX, s.lastY = pos.X, pos.Y
		if pointerMove != nil {
			pointerMove(0, pos.X, pos.Y)
		}
	}
	if s.pointerHeld && rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		s.pointerHeld = false
		if pointerUp != nil {
			pointerUp(0)
		}
	}

	if delta := rl.GetMouseWheelMove(); delta != 0 && scroll != nil {
		scroll(delta)
	}
}
