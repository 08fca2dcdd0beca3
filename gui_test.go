package interact_test

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/interact"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	lastVerts   int
	err         error
	width       int
	height      int
}

func (m *mockRenderer) Render(dl *interact.DrawList) error {
	m.renderCalls++
	m.lastVerts = len(dl.VtxBuffer)
	return m.err
}

func (m *mockRenderer) Resize(width, height int) {
	m.width, m.height = width, height
}

func TestUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := interact.New(renderer)

	tf := interact.NewTextField(10, 10, 200, 30, 16)
	ok := interact.NewButton(220, 10, 80, 30, "OK")
	ui.Add(tf, ok)

	in := interact.NewInputState()
	in.BeginFrame(0.016)
	ui.Update(in)

	if err := ui.Draw(); err != nil {
		t.Fatalf("Draw() returned error: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	if renderer.lastVerts == 0 {
		t.Error("rendered an empty DrawList")
	}
	if ui.Frame() != 1 {
		t.Errorf("Frame() = %d, want 1", ui.Frame())
	}
	if len(ui.Widgets()) != 2 {
		t.Errorf("Widgets() has %d entries, want 2", len(ui.Widgets()))
	}
}

func TestUITypingIntoField(t *testing.T) {
	ui := interact.New(nil)
	tf := interact.NewTextField(10, 10, 200, 30, 16)
	ui.Add(tf)

	in := interact.NewInputState()
	in.BeginFrame(0.016)
	in.SetMousePos(20, 20)
	in.SetMouseButton(interact.MouseButtonLeft, true)
	ui.Update(in)

	for _, r := range "hi" {
		in.BeginFrame(0.016)
		in.AddInputChar(r)
		ui.Update(in)
	}

	if got := tf.Text(); got != "hi" {
		t.Errorf("Text() = %q, want %q", got, "hi")
	}
}

func TestUIDrawWithoutRenderer(t *testing.T) {
	ui := interact.New(nil)
	ui.Add(interact.NewButton(0, 0, 10, 10, "x"))

	if err := ui.Draw(); err != nil {
		t.Errorf("Draw() without renderer = %v, want nil", err)
	}
	ui.Resize(100, 100)
}

func TestUIDrawErrorIsWrappedAndLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	renderErr := errors.New("context lost")
	renderer := &mockRenderer{err: renderErr}

	ui := interact.New(renderer, interact.WithLogger(zap.New(core)))
	ui.Add(interact.NewCheckbox(0, 0, 20, "c"))

	err := ui.Draw()
	if !errors.Is(err, renderErr) {
		t.Fatalf("Draw() = %v, want wrapped %v", err, renderErr)
	}

	entries := logs.FilterMessage("render failed").All()
	if len(entries) != 1 {
		t.Fatalf("got %d render failure logs, want 1", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Errorf("logged at %v, want error", entries[0].Level)
	}
}

func TestUIDrawTo(t *testing.T) {
	ui := interact.New(nil)
	ui.Add(interact.NewDropdown(0, 0, 100, 30, []string{"a", "b"}))

	dl := interact.AcquireDrawList(ui.Font())
	defer interact.ReleaseDrawList(dl)

	ui.DrawTo(dl)
	if len(dl.VtxBuffer) == 0 {
		t.Error("DrawTo produced no geometry")
	}
}

func TestUIThemeAppliesToAddedWidgets(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	theme, err := interact.ThemeByName("dark")
	if err != nil {
		t.Fatal(err)
	}

	ui := interact.New(nil, interact.WithTheme(theme), interact.WithLogger(zap.New(core)))
	before := interact.NewButton(0, 0, 10, 10, "a")
	ui.Add(before)
	if before.Style() != interact.DarkStyle() {
		t.Error("theme not applied on Add")
	}

	ui.ApplyTheme(interact.DefaultTheme())
	after := interact.NewButton(0, 0, 10, 10, "b")
	ui.Add(after)

	if before.Style() != interact.DefaultStyle() || after.Style() != interact.DefaultStyle() {
		t.Error("ApplyTheme did not restyle existing and new widgets")
	}
	if logs.FilterMessage("theme applied").Len() != 1 {
		t.Error("ApplyTheme was not logged")
	}
}

func TestUIResize(t *testing.T) {
	renderer := &mockRenderer{}
	ui := interact.New(renderer, interact.WithLogger(nil))

	ui.Resize(1024, 768)
	if renderer.width != 1024 || renderer.height != 768 {
		t.Errorf("renderer size = %dx%d", renderer.width, renderer.height)
	}
	if ui.Logger() == nil {
		t.Error("WithLogger(nil) left no logger")
	}
}

func TestUIWithFont(t *testing.T) {
	font := interact.NewBitmapFont(basicfont.Face7x13)
	ui := interact.New(nil, interact.WithFont(font))
	if ui.Font() != font {
		t.Error("WithFont ignored")
	}
	if interact.New(nil).Font() != interact.DefaultFont() {
		t.Error("default font is not DefaultFont")
	}
}

func BenchmarkFullFrame(b *testing.B) {
	renderer := &mockRenderer{}
	ui := interact.New(renderer)
	for i := 0; i < 10; i++ {
		y := float32(i) * 40
		ui.Add(
			interact.NewTextField(0, y, 200, 30, 32),
			interact.NewButton(210, y, 80, 30, "Go"),
		)
	}
	in := interact.NewInputState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in.BeginFrame(0.016)
		ui.Update(in)
		_ = ui.Draw()
	}
}
