package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/go-theft-auto/interact"
)

var raylibKeys = map[interact.Key]int32{
	interact.KeyTab:       rl.KeyTab,
	interact.KeyLeft:      rl.KeyLeft,
	interact.KeyRight:     rl.KeyRight,
	interact.KeyUp:        rl.KeyUp,
	interact.KeyDown:      rl.KeyDown,
	interact.KeyHome:      rl.KeyHome,
	interact.KeyEnd:       rl.KeyEnd,
	interact.KeyDelete:    rl.KeyDelete,
	interact.KeyBackspace: rl.KeyBackspace,
	interact.KeySpace:     rl.KeySpace,
	interact.KeyEnter:     rl.KeyEnter,
	interact.KeyEscape:    rl.KeyEscape,
}

var raylibButtons = map[interact.MouseButton]rl.MouseButton{
	interact.MouseButtonLeft:   rl.MouseButtonLeft,
	interact.MouseButtonRight:  rl.MouseButtonRight,
	interact.MouseButtonMiddle: rl.MouseButtonMiddle,
}

// Poll fills in with this frame's raylib input. Call it once per frame,
// before rl.BeginDrawing.
func Poll(in *interact.InputState) {
	in.BeginFrame(rl.GetFrameTime())

	mouse := rl.GetMousePosition()
	in.SetMousePos(mouse.X, mouse.Y)
	for b, rb := range raylibButtons {
		in.SetMouseButton(b, rl.IsMouseButtonDown(rb) || rl.IsMouseButtonPressed(rb))
	}
	in.SetMouseWheel(0, rl.GetMouseWheelMove())

	// A key pressed and released within one frame still counts as pressed.
	for k, rk := range raylibKeys {
		in.SetKey(k, rl.IsKeyDown(rk) || rl.IsKeyPressed(rk))
	}

	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		in.AddInputChar(rune(ch))
	}
}
