package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-theft-auto/interact"
)

var ebitenKeys = map[interact.Key]ebiten.Key{
	interact.KeyTab:       ebiten.KeyTab,
	interact.KeyLeft:      ebiten.KeyArrowLeft,
	interact.KeyRight:     ebiten.KeyArrowRight,
	interact.KeyUp:        ebiten.KeyArrowUp,
	interact.KeyDown:      ebiten.KeyArrowDown,
	interact.KeyHome:      ebiten.KeyHome,
	interact.KeyEnd:       ebiten.KeyEnd,
	interact.KeyDelete:    ebiten.KeyDelete,
	interact.KeyBackspace: ebiten.KeyBackspace,
	interact.KeySpace:     ebiten.KeySpace,
	interact.KeyEnter:     ebiten.KeyEnter,
	interact.KeyEscape:    ebiten.KeyEscape,
}

var ebitenButtons = map[interact.MouseButton]ebiten.MouseButton{
	interact.MouseButtonLeft:   ebiten.MouseButtonLeft,
	interact.MouseButtonRight:  ebiten.MouseButtonRight,
	interact.MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// Poll fills in with this tick's ebiten input. Call it once per
// ebiten.Game.Update; dt is one tick at the current TPS.
func Poll(in *interact.InputState) {
	dt := float32(0)
	if tps := ebiten.TPS(); tps > 0 {
		dt = 1 / float32(tps)
	}
	in.BeginFrame(dt)

	x, y := ebiten.CursorPosition()
	in.SetMousePos(float32(x), float32(y))
	for b, eb := range ebitenButtons {
		in.SetMouseButton(b, ebiten.IsMouseButtonPressed(eb) || inpututil.IsMouseButtonJustPressed(eb))
	}

	wx, wy := ebiten.Wheel()
	in.SetMouseWheel(float32(wx), float32(wy))

	for k, ek := range ebitenKeys {
		in.SetKey(k, ebiten.IsKeyPressed(ek) || inpututil.IsKeyJustPressed(ek))
	}

	// Character input from the OS text system handles layout and shift.
	for _, r := range ebiten.AppendInputChars(nil) {
		in.AddInputChar(r)
	}
}
