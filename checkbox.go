package interact

const (
	checkboxAnimSpeed  float32 = 4
	checkboxLabelGap   float32 = 10
	checkboxMarkWidth  float32 = 2
	checkboxMarkInset  float32 = 0.2 // fraction of the box width
	checkboxBorder     float32 = 2
	checkboxBorderHeld float32 = 3
)

// Checkbox is a square toggle with a label on its right. The check mark
// grows and fades in when checked.
type Checkbox struct {
	bounds  Rect
	label   string
	checked bool

	hovered  bool
	held     bool // pressed and not yet released
	progress float32

	backgroundColor uint32
	checkColor      uint32
	borderColor     uint32
	hoverColor      uint32
	labelColor      uint32
	fontSize        int
}

// NewCheckbox creates an unchecked checkbox of size x size pixels.
func NewCheckbox(x, y, size float32, label string) *Checkbox {
	return &Checkbox{
		bounds:          NewRect(x, y, size, size),
		label:           label,
		backgroundColor: ColorWhite,
		checkColor:      ColorGreen,
		borderColor:     ColorBlack,
		hoverColor:      RGBA(245, 245, 245, 255),
		labelColor:      ColorBlack,
		fontSize:        20,
	}
}

// Update toggles the checkbox on a primary press inside it and advances the
// check mark animation.
func (cb *Checkbox) Update(in *InputState) {
	cb.hovered = cb.bounds.Contains(in.MousePos())

	if cb.hovered && in.MouseClicked(MouseButtonLeft) {
		cb.held = true
		cb.checked = !cb.checked
		cb.progress = 0
	}

	target := float32(0)
	if cb.checked {
		target = 1
	}
	cb.progress = approach(cb.progress, target, frameDelta(in.DeltaTime)*checkboxAnimSpeed)

	if in.MouseReleased(MouseButtonLeft) {
		cb.held = false
	}
}

// Draw renders the box, the animated check mark and the label.
func (cb *Checkbox) Draw(c Canvas) {
	bg := cb.backgroundColor
	if cb.hovered {
		bg = cb.hoverColor
	}
	c.FillRect(cb.bounds, bg)

	border := checkboxBorder
	if cb.held {
		border = checkboxBorderHeld
	}
	c.StrokeRect(cb.bounds, border, cb.borderColor)

	if cb.progress > 0 {
		inner := cb.bounds.Inset(cb.bounds.W * checkboxMarkInset)
		cx := inner.X + inner.W/2
		cy := inner.Y + inner.H/2
		s := inner.W / 2 * cb.progress
		color := WithAlpha(cb.checkColor, cb.progress)

		c.Line(cx-s, cy, cx, cy+s, checkboxMarkWidth, color)
		c.Line(cx, cy+s, cx+s, cy-s, checkboxMarkWidth, color)
	}

	if cb.label != "" {
		lx := cb.bounds.X + cb.bounds.W + checkboxLabelGap
		c.Text(cb.label, lx, textY(cb.bounds, cb.fontSize), cb.fontSize, cb.labelColor)
	}
}

// IsChecked reports whether the box is checked.
func (cb *Checkbox) IsChecked() bool { return cb.checked }

// SetChecked sets the checked state, restarting the animation on a change.
func (cb *Checkbox) SetChecked(checked bool) {
	if checked == cb.checked {
		return
	}
	cb.checked = checked
	if checked {
		cb.progress = 0
	} else {
		cb.progress = 1
	}
}

// Toggle flips the checked state.
func (cb *Checkbox) Toggle() {
	cb.SetChecked(!cb.checked)
}

// IsHovered reports whether the pointer was over the box in the last Update.
func (cb *Checkbox) IsHovered() bool { return cb.hovered }

// Progress returns the check mark animation progress in [0, 1].
func (cb *Checkbox) Progress() float32 { return cb.progress }

// Label returns the checkbox label.
func (cb *Checkbox) Label() string { return cb.label }

// SetLabel replaces the label.
func (cb *Checkbox) SetLabel(label string) { cb.label = label }

// Bounds returns the box rectangle, excluding the label.
func (cb *Checkbox) Bounds() Rect { return cb.bounds }

// SetBounds moves or resizes the box.
func (cb *Checkbox) SetBounds(r Rect) { cb.bounds = r }

// SetColors sets all checkbox colors.
func (cb *Checkbox) SetColors(background, check, border, hover, label uint32) {
	cb.backgroundColor = background
	cb.checkColor = check
	cb.borderColor = border
	cb.hoverColor = hover
	cb.labelColor = label
}

// SetFontSize sets the label font size. Non-positive sizes are ignored.
func (cb *Checkbox) SetFontSize(size int) {
	if size > 0 {
		cb.fontSize = size
	}
}

// FontSize returns the label font size.
func (cb *Checkbox) FontSize() int { return cb.fontSize }

// ApplyStyle copies colors and font size from s.
func (cb *Checkbox) ApplyStyle(s Style) {
	cb.SetColors(s.BackgroundColor, s.CheckColor, s.BorderColor, s.HoverColor, s.TextColor)
	cb.SetFontSize(s.FontSize)
}
