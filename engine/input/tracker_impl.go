package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/jasonthepenguin/boarscape/common"
)

type trackerImpl struct {
	mu *sync.Mutex

	source   Source
	attached bool

	forwardKey  Key
	backwardKey Key
	leftKey     Key
	rightKey    Key
	jumpKey     Key
	runKeys     []Key

	keys map[Key]bool

	jumpPending bool

	dragging      bool
	activePointer int64
	lastX, lastY  float32
	dragX, dragY  float32

	wheel float32
}

// Ensure trackerImpl implements Tracker interface.
var _ Tracker = &trackerImpl{}

// NewTracker creates a Tracker subscribed to the given source. The returned
// tracker is already attached; call Detach to unsubscribe.
//
// Parameters:
//   - source: the event surface to subscribe to
//   - options: functional options to configure key bindings
//
// Returns:
//   - Tracker: the newly created tracker
func NewTracker(source Source, options ...TrackerOption) Tracker {
	if source == nil {
		panic("input: NewTracker requires a non-nil Source")
	}

	t := &trackerImpl{
		mu:     &sync.Mutex{},
		source: source,

		forwardKey:  KeyW,
		backwardKey: KeyS,
		leftKey:     KeyA,
		rightKey:    KeyD,
		jumpKey:     KeySpace,
		runKeys:     []Key{KeyLeftShift, KeyRightShift},

		keys: make(map[Key]bool),
	}

	for _, option := range options {
		option(t)
	}

	t.attach()
	return t
}

func (t *trackerImpl) attach() {
	t.source.SetKeyDownCallback(t.onKeyDown)
	t.source.SetKeyUpCallback(t.onKeyUp)
	t.source.SetPointerDownCallback(t.onPointerDown)
	t.source.SetPointerMoveCallback(t.onPointerMove)
	t.source.SetPointerUpCallback(t.onPointerUp)
	t.source.SetScrollCallback(t.onScroll)
	t.attached = true
}

func (t *trackerImpl) onKeyDown(key Key) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Held-key repeats arrive as extra down events; only a fresh press may
	// arm the one-shot jump flag.
	fresh := !t.keys[key]
	t.keys[key] = true
	if fresh && key == t.jumpKey {
		t.jumpPending = true
	}
}

func (t *trackerImpl) onKeyUp(key Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.keys, key)
}

func (t *trackerImpl) onPointerDown(pointer int64, x, y float32) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.dragging {
		return
	}
	t.dragging = true
	t.activePointer = pointer
	t.lastX, t.lastY = x, y
}

func (t *trackerImpl) onPointerMove(pointer int64, x, y float32) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.dragging || pointer != t.activePointer {
		return
	}
	t.dragX += x - t.lastX
	t.dragY += y - t.lastY
	t.lastX, t.lastY = x, y
}

func (t *trackerImpl) onPointerUp(pointer int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.dragging || pointer != t.activePointer {
		return
	}
	t.dragging = false
}

func (t *trackerImpl) onScroll(delta float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.wheel += delta
}

func (t *trackerImpl) Consume() Intents {
	t.mu.Lock()
	defer t.mu.Unlock()

	var move mgl32.Vec2
	if t.keys[t.rightKey] {
		move[0] += 1
	}
	if t.keys[t.leftKey] {
		move[0] -= 1
	}
	if t.keys[t.forwardKey] {
		move[1] += 1
	}
	if t.keys[t.backwardKey] {
		move[1] -= 1
	}
	if move.LenSqr() > common.Epsilon {
		move = move.Normalize()
	}

	running := false
	for _, k := range t.runKeys {
		if t.keys[k] {
			running = true
			break
		}
	}

	in := Intents{
		MoveX:   move.X(),
		MoveZ:   move.Y(),
		Running: running,
		Jump:    t.jumpPending,
		DragX:   t.dragX,
		DragY:   t.dragY,
		Zoom:    t.wheel,
	}

	t.jumpPending = false
	t.dragX, t.dragY = 0, 0
	t.wheel = 0

	return in
}

func (t *trackerImpl) Detach() {
	t.mu.Lock()
	if !t.attached {
		t.mu.Unlock()
		return
	}
	t.attached = false
	src := t.source
	t.mu.Unlock()

	// Unregister outside the tracker lock; the source has its own.
	src.SetKeyDownCallback(nil)
	src.SetKeyUpCallback(nil)
	src.SetPointerDownCallback(nil)
	src.SetPointerMoveCallback(nil)
	src.SetPointerUpCallback(nil)
	src.SetScrollCallback(nil)
}
