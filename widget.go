package interact

// Widget is implemented by every widget in this package. The host calls
// Update once per frame with that frame's input, then Draw.
type Widget interface {
	Update(in *InputState)
	Draw(c Canvas)
}

// Widgets is an ordered widget collection. Later widgets draw on top, so
// dropdowns are usually added last.
type Widgets []Widget

// UpdateAll updates every widget in order.
func (ws Widgets) UpdateAll(in *InputState) {
	for _, w := range ws {
		w.Update(in)
	}
}

// DrawAll draws every widget in order.
func (ws Widgets) DrawAll(c Canvas) {
	for _, w := range ws {
		w.Draw(c)
	}
}

var (
	_ Widget = (*TextField)(nil)
	_ Widget = (*Button)(nil)
	_ Widget = (*Checkbox)(nil)
	_ Widget = (*Dropdown)(nil)
)
