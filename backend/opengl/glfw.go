package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/table"
)

// GLFWInputAdapter feeds GLFW mouse input into a table.InputState.
// It leaves the key callback free for the application.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *table.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  table.NewInputState(),
	}

	window.SetMouseButtonCallback(adapter.mouseButtonCallback)

	return adapter
}

// Update samples the cursor for this frame.
// Call this once per frame after glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *table.InputState {
	// Cursor is reported in window coordinates; the table is laid out in
	// framebuffer pixels, which differ on HiDPI displays.
	x, y := a.window.GetCursorPos()
	sx, sy := a.contentScale()
	a.input.SetMousePos(float32(x)*sx, float32(y)*sy)

	return a.input
}

// EndFrame clears the button edges seen this frame.
// Call this after the frame has consumed the input.
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

func (a *GLFWInputAdapter) contentScale() (float32, float32) {
	ww, wh := a.window.GetSize()
	fw, fh := a.window.GetFramebufferSize()
	if ww == 0 || wh == 0 {
		return 1, 1
	}
	return float32(fw) / float32(ww), float32(fh) / float32(wh)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

// glfwMouseButton maps GLFW mouse buttons to table mouse buttons.
func glfwMouseButton(button glfw.MouseButton) table.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return table.MouseButtonLeft
	case glfw.MouseButtonRight:
		return table.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return table.MouseButtonMiddle
	default:
		return -1
	}
}
