package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/interact"
)

// Game hosts an interact.UI as an ebiten.Game.
type Game struct {
	ui         *interact.UI
	in         *interact.InputState
	width      int
	height     int
	background uint32

	// OnFrame, if set, runs after the widgets update each tick.
	OnFrame func(in *interact.InputState)
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a game with a fixed logical screen size.
func NewGame(ui *interact.UI, width, height int, background uint32) *Game {
	return &Game{
		ui:         ui,
		in:         interact.NewInputState(),
		width:      width,
		height:     height,
		background: background,
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	Poll(g.in)
	g.ui.Update(g.in)
	if g.OnFrame != nil {
		g.OnFrame(g.in)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ToColor(g.background))
	g.ui.DrawTo(NewCanvas(screen))
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window titled title and runs the game until it is closed.
func Run(title string, g *Game) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(g)
}
