package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/go-theft-auto/interact"
)

// Config describes the raylib window opened by Run.
type Config struct {
	Title      string
	Width      int32
	Height     int32
	TargetFPS  int32
	Background uint32
}

// Run opens a window and drives ui until the window is closed. frame, if
// non-nil, is called after ui.Update each frame for application logic.
func Run(cfg Config, ui *interact.UI, frame func(in *interact.InputState)) {
	rl.InitWindow(cfg.Width, cfg.Height, cfg.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // Escape belongs to the widgets
	if cfg.TargetFPS > 0 {
		rl.SetTargetFPS(cfg.TargetFPS)
	}

	in := interact.NewInputState()
	canvas := Canvas{}
	for !rl.WindowShouldClose() {
		Poll(in)
		ui.Update(in)
		if frame != nil {
			frame(in)
		}

		rl.BeginDrawing()
		rl.ClearBackground(ToColor(cfg.Background))
		ui.DrawTo(canvas)
		rl.EndDrawing()
	}
}
