package interact

import (
	"fmt"

	"go.uber.org/zap"
)

// Renderer draws a finalized DrawList to the screen.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// UI hosts a set of widgets and drives them once per frame.
//
// A typical loop:
//
//	in := adapter.BeginFrame() // clears edges, then events fill it in
//	glfw.PollEvents()
//	ui.Update(in)
//	if err := ui.Draw(); err != nil { ... }
//
// Immediate-mode backends that implement Canvas directly call DrawTo instead
// of Draw.
type UI struct {
	renderer Renderer
	font     Font
	logger   *zap.Logger
	widgets  Widgets
	theme    *Theme
	frame    uint64
}

// UIOption configures a UI instance.
type UIOption func(*UI)

// WithFont sets the font used for text in DrawLists (default DefaultFont).
func WithFont(font Font) UIOption {
	return func(u *UI) { u.font = font }
}

// WithLogger sets the logger (default no-op).
func WithLogger(logger *zap.Logger) UIOption {
	return func(u *UI) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// WithTheme styles every widget added to the UI.
func WithTheme(t Theme) UIOption {
	return func(u *UI) { u.theme = &t }
}

// New creates a UI drawing through renderer. renderer may be nil when only
// DrawTo is used.
func New(renderer Renderer, opts ...UIOption) *UI {
	u := &UI{
		renderer: renderer,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(u)
	}

	if u.font == nil {
		u.font = DefaultFont()
	}
	return u
}

// Add appends widgets, applying the theme if one is set.
func (u *UI) Add(ws ...Widget) {
	if u.theme != nil {
		u.theme.Apply(ws...)
	}
	u.widgets = append(u.widgets, ws...)
}

// Widgets returns the hosted widgets in draw order.
func (u *UI) Widgets() Widgets {
	return u.widgets
}

// ApplyTheme styles every hosted widget and every widget added later.
func (u *UI) ApplyTheme(t Theme) {
	u.theme = &t
	t.Apply(u.widgets...)
	u.logger.Info("theme applied",
		zap.String("theme", t.Name),
		zap.Int("widgets", len(u.widgets)),
	)
}

// Update advances every widget by one frame.
func (u *UI) Update(in *InputState) {
	u.frame++
	u.widgets.UpdateAll(in)
}

// Frame returns the number of Update calls so far.
func (u *UI) Frame() uint64 {
	return u.frame
}

// Draw records every widget into a pooled DrawList and renders it.
func (u *UI) Draw() error {
	if u.renderer == nil {
		return nil
	}

	dl := AcquireDrawList(u.font)
	defer ReleaseDrawList(dl)

	u.widgets.DrawAll(dl)
	dl.Finalize()

	if err := u.renderer.Render(dl); err != nil {
		u.logger.Error("render failed",
			zap.Uint64("frame", u.frame),
			zap.Int("commands", len(dl.CmdBuffer)),
			zap.Error(err),
		)
		return fmt.Errorf("render frame %d: %w", u.frame, err)
	}
	return nil
}

// DrawTo draws every widget onto c.
func (u *UI) DrawTo(c Canvas) {
	u.widgets.DrawAll(c)
}

// Resize notifies the renderer of a display size change.
func (u *UI) Resize(width, height int) {
	u.logger.Debug("resize", zap.Int("width", width), zap.Int("height", height))
	if u.renderer != nil {
		u.renderer.Resize(width, height)
	}
}

// Font returns the font used for DrawLists.
func (u *UI) Font() Font {
	return u.font
}

// Logger returns the UI logger.
func (u *UI) Logger() *zap.Logger {
	return u.logger
}
