package input

// Key is a virtual key code for cross-platform input handling. Values match
// GLFW key codes, which use ASCII values for printable keys.
type Key uint32

const (
	KeyW Key = 87 // W key (ASCII)
	KeyA Key = 65 // A key (ASCII)
	KeyS Key = 83 // S key (ASCII)
	KeyD Key = 68 // D key (ASCII)

	KeySpace      Key = 32  // Spacebar (ASCII)
	KeyLeftShift  Key = 340 // Left shift (GLFW)
	KeyRightShift Key = 344 // Right shift (GLFW)
	KeyEscape     Key = 256 // Escape (GLFW)
)
