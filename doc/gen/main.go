// Command gen renders sample tables offscreen, captures framebuffer pixels,
// and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/natefinch/atomic"

	"github.com/go-theft-auto/table"
	"github.com/go-theft-auto/table/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single table screenshot to capture.
type screenshot struct {
	name   string                          // filename without extension
	width  int                             // viewport width
	height int                             // viewport height
	style  table.Style                     // host style
	hover  table.Vec2                      // mouse position, for row highlight
	build  func(doc *table.Document) error // fills the document
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("table renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only the projection follows the shot size. The hidden window stays at
	// 800x600, larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh host and document per screenshot.
	origin := table.Vec2{X: table.SpaceMD, Y: table.SpaceMD}
	host := table.NewHost(renderer, table.WithStyle(s.style), table.WithOrigin(origin))
	if err := s.build(host.Document()); err != nil {
		return err
	}

	input := table.NewInputState()
	input.SetMousePos(s.hover.X, s.hover.Y)

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	displaySize := table.Vec2{X: float32(s.width), Y: float32(s.height)}
	if err := host.Frame(input, displaySize); err != nil {
		return err
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return err
	}

	// Replace the previous screenshot atomically.
	return atomic.WriteFile(filepath.Join(outDir, s.name+".jpg"), &buf)
}

var people = [][]string{
	{"Alice", "30", "Lisbon"},
	{"Bob", "41", "Oslo"},
	{"Carol", "27", "Montevideo"},
	{"Dmitri", "35", "Tbilisi"},
	{"Eun-ji", "52", "Busan"},
}

func peopleColumns() []table.Column {
	return []table.Column{
		table.NewColumn("Name", 160),
		table.NewColumn("Age", 64),
		table.NewColumn("City", 160),
	}
}

// pushPeople adds the sample rows; every row is clickable.
func pushPeople(t *table.Table[int]) error {
	for i, p := range people {
		values := make([]table.KeyValue[int], len(p))
		for j, field := range p {
			values[j] = table.NewKeyValue(field, i)
		}
		if err := t.Push(values, func() {}); err != nil {
			return err
		}
	}
	return nil
}

func buildScreenshots() []screenshot {
	gta := table.GTAStyle()
	rowH := gta.RowHeight()

	return []screenshot{
		{
			name: "table", width: 400, height: 170, style: gta,
			// Over the second data row.
			hover: table.Vec2{X: 100, Y: table.SpaceMD + rowH*2.5},
			build: func(doc *table.Document) error {
				return pushPeople(table.New[int](doc, doc.Root(), peopleColumns()...))
			},
		},
		{
			name: "table_cleared", width: 400, height: 50, style: gta,
			hover: table.Vec2{X: -1, Y: -1},
			build: func(doc *table.Document) error {
				t := table.New[int](doc, doc.Root(), peopleColumns()...)
				if err := pushPeople(t); err != nil {
					return err
				}
				t.Clear()
				return nil
			},
		},
		{
			name: "table_default", width: 400, height: 120, style: table.DefaultStyle(),
			hover: table.Vec2{X: -1, Y: -1},
			build: func(doc *table.Document) error {
				return pushPeople(table.New[int](doc, doc.Root(), peopleColumns()...))
			},
		},
	}
}
