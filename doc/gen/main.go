// Command gen renders every widget in its interesting states, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/interact"
	"github.com/go-theft-auto/interact/backend/opengl"
)

const frameDelta = 1.0 / 60.0

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name    string                                  // filename without extension
	width   int                                     // viewport width
	height  int                                     // viewport height
	widgets func() []interact.Widget                // fresh widgets for this capture
	input   func(frame int, in *interact.InputState) // scripted input, may be nil
	frames  int                                     // frames to simulate (0 = default 2)
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

	renderer, err := opengl.NewRenderer(800, 600, nil)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
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
	// Only update the renderer projection. The hidden window stays at 800x600
	// (larger than every screenshot) since GLFW resizes asynchronously.
	renderer.Resize(s.width, s.height)

	// Fresh UI per screenshot to avoid state leaking between captures.
	ui := interact.New(renderer)
	ui.Add(s.widgets()...)

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	in := interact.NewInputState()
	for i := 0; i < frames; i++ {
		in.BeginFrame(frameDelta)
		if s.input != nil {
			s.input(i, in)
		}
		ui.Update(in)

		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := ui.Draw(); err != nil {
			return err
		}
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

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// pointAt places the pointer at (x, y) with the primary button held or not.
func pointAt(in *interact.InputState, x, y float32, down bool) {
	in.SetMousePos(x, y)
	in.SetMouseButton(interact.MouseButtonLeft, down)
}

// typeText clicks into the field at (x, y) on frame 0 and then types one
// character of text per frame.
func typeText(x, y float32, text string) func(int, *interact.InputState) {
	runes := []rune(text)
	return func(frame int, in *interact.InputState) {
		switch {
		case frame == 0:
			pointAt(in, x, y, true)
		case frame == 1:
			pointAt(in, x, y, false)
		case frame-2 < len(runes):
			in.AddInputChar(runes[frame-2])
		}
	}
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "textfield_placeholder", width: 340, height: 70,
			widgets: func() []interact.Widget {
				tf := interact.NewTextField(10, 15, 320, 40, 32)
				tf.SetPlaceholder("Type your name")
				return []interact.Widget{tf}
			},
		},
		{
			name: "textfield_active", width: 340, height: 70,
			widgets: func() []interact.Widget {
				return []interact.Widget{interact.NewTextField(10, 15, 320, 40, 32)}
			},
			// Ends on a frame where the caret is in the visible half of its blink.
			input:  typeText(20, 30, "Hello, world"),
			frames: 16,
		},
		{
			name: "textfield_full", width: 340, height: 70,
			widgets: func() []interact.Widget {
				tf := interact.NewTextField(10, 15, 320, 40, 5)
				tf.SetValue("abcdefgh")
				return []interact.Widget{tf}
			},
		},
		{
			name: "button_idle", width: 180, height: 70,
			widgets: func() []interact.Widget {
				return []interact.Widget{interact.NewButton(10, 10, 160, 50, "Submit")}
			},
		},
		{
			name: "button_hover", width: 180, height: 70,
			widgets: func() []interact.Widget {
				return []interact.Widget{interact.NewButton(10, 10, 160, 50, "Submit")}
			},
			input: func(_ int, in *interact.InputState) {
				pointAt(in, 90, 35, false)
			},
			frames: 30,
		},
		{
			name: "button_pressed", width: 180, height: 70,
			widgets: func() []interact.Widget {
				return []interact.Widget{interact.NewButton(10, 10, 160, 50, "Submit")}
			},
			input: func(_ int, in *interact.InputState) {
				pointAt(in, 90, 35, true)
			},
			frames: 30,
		},
		{
			name: "button_presets", width: 700, height: 70,
			widgets: func() []interact.Widget {
				styles := []struct {
					label string
					style interact.Style
				}{
					{"Primary", interact.ButtonPrimary()},
					{"Secondary", interact.ButtonSecondary()},
					{"Success", interact.ButtonSuccess()},
					{"Danger", interact.ButtonDanger()},
				}
				ws := make([]interact.Widget, 0, len(styles))
				for i, s := range styles {
					b := interact.NewButton(10+float32(i)*172, 10, 160, 50, s.label)
					b.ApplyStyle(s.style)
					ws = append(ws, b)
				}
				return ws
			},
		},
		{
			name: "checkbox", width: 260, height: 90,
			widgets: func() []interact.Widget {
				on := interact.NewCheckbox(10, 10, 28, "Checked")
				on.SetChecked(true)
				off := interact.NewCheckbox(10, 50, 28, "Unchecked")
				return []interact.Widget{on, off}
			},
			frames: 30,
		},
		{
			name: "dropdown_closed", width: 240, height: 60,
			widgets: func() []interact.Widget {
				d := interact.NewDropdown(10, 10, 220, 36, []string{"Red", "Green", "Blue"})
				d.SetSelectedIndex(1)
				return []interact.Widget{d}
			},
		},
		{
			name: "dropdown_open", width: 240, height: 260,
			widgets: func() []interact.Widget {
				items := []string{"Germany", "France", "Spain", "Italy", "Poland", "Sweden", "Norway"}
				return []interact.Widget{interact.NewDropdown(10, 10, 220, 36, items)}
			},
			input: func(frame int, in *interact.InputState) {
				switch frame {
				case 0:
					pointAt(in, 100, 28, true)
				case 1:
					pointAt(in, 100, 28, false)
				default:
					// Hover the third row.
					pointAt(in, 100, 10+36*3+18, false)
				}
			},
			frames: 4,
		},
		{
			name: "theme_dark", width: 560, height: 120,
			widgets: func() []interact.Widget {
				theme, _ := interact.ThemeByName("dark")
				tf := interact.NewTextField(10, 10, 300, 40, 32)
				tf.SetValue("Dark theme")
				cb := interact.NewCheckbox(330, 16, 28, "Enabled")
				cb.SetChecked(true)
				b := interact.NewButton(10, 65, 140, 44, "OK")
				d := interact.NewDropdown(170, 65, 200, 44, []string{"One", "Two"})
				d.SetSelectedIndex(0)
				ws := []interact.Widget{tf, cb, b, d}
				theme.Apply(ws...)
				return ws
			},
			frames: 30,
		},
	}
}
