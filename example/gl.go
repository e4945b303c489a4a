package main

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/table"
	"github.com/go-theft-auto/table/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "table example"
)

// nextStyle switches between the GTA and the default look.
func nextStyle(cur table.Style) table.Style {
	if cur.FontScale == table.GTAStyle().FontScale {
		return table.DefaultStyle()
	}
	return table.GTAStyle()
}

func newGLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gl",
		Short: "Show the table in an OpenGL window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGL()
		},
	}
}

func (a *app) runGL() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fw, fh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fw, fh)
	if err != nil {
		return fmt.Errorf("table renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	host := table.NewHost(renderer,
		table.WithStyle(table.GTAStyle()),
		table.WithOrigin(table.Vec2{X: table.SpaceMD * 2, Y: table.SpaceMD * 2}),
	)

	t, err := a.load(host.Document())
	if err != nil {
		return err
	}
	defer t.Close()

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyC:
			t.Clear()
		case glfw.KeyS:
			host.SetStyle(nextStyle(host.Style()))
		case glfw.KeyR:
			if err := a.reload(t); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case glfw.KeyEscape, glfw.KeyQ:
			w.SetShouldClose(true)
		}
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		host.Resize(width, height)
	})

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := table.Vec2{X: float32(w), Y: float32(h)}
		if err := host.Frame(input, displaySize); err != nil {
			return fmt.Errorf("table render: %w", err)
		}
		inputAdapter.EndFrame()

		window.SwapBuffers()
	}

	return nil
}
