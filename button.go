package interact

// buttonAnimSpeed is how fast the hover/press animation moves, in progress
// units per second.
const buttonAnimSpeed float32 = 8

// Button is a clickable push button with an animated hover and press color.
type Button struct {
	bounds  Rect
	label   string
	style   Style
	enabled bool

	hovered  bool
	pressed  bool
	clicked  bool
	progress float32 // 0 idle, 0.5 hovered, 1 pressed
}

// NewButton creates an enabled button with DefaultStyle.
func NewButton(x, y, width, height float32, label string) *Button {
	return &Button{
		bounds:  NewRect(x, y, width, height),
		label:   label,
		style:   DefaultStyle(),
		enabled: true,
	}
}

// Update tracks hover and press state and eases the animation toward it.
// A click is a primary release over an enabled button.
func (b *Button) Update(in *InputState) {
	b.clicked = false
	if !b.enabled {
		b.hovered = false
		b.pressed = false
		return
	}

	b.hovered = b.bounds.Contains(in.MousePos())
	b.pressed = b.hovered && in.MouseDown(MouseButtonLeft)
	b.clicked = b.hovered && in.MouseReleased(MouseButtonLeft)

	var target float32
	switch {
	case b.pressed:
		target = 1
	case b.hovered:
		target = 0.5
	}
	b.progress = approach(b.progress, target, frameDelta(in.DeltaTime)*buttonAnimSpeed)
}

// Clicked reports whether the last Update saw a click.
func (b *Button) Clicked() bool {
	return b.clicked
}

// fillColor blends background to hover over the first half of the animation
// and hover to pressed over the second.
func (b *Button) fillColor() uint32 {
	if !b.enabled {
		return b.style.DisabledColor
	}
	if b.progress <= 0.5 {
		return LerpColor(b.style.BackgroundColor, b.style.HoverColor, b.progress*2)
	}
	return LerpColor(b.style.HoverColor, b.style.PressedColor, (b.progress-0.5)*2)
}

func (b *Button) borderColor() uint32 {
	switch {
	case b.pressed:
		return b.style.BorderPressedColor
	case b.hovered:
		return b.style.BorderHoverColor
	default:
		return b.style.BorderColor
	}
}

func (b *Button) textColor() uint32 {
	switch {
	case !b.enabled:
		return b.style.TextDisabledColor
	case b.pressed:
		return b.style.TextPressedColor
	case b.hovered:
		return b.style.TextHoverColor
	default:
		return b.style.TextColor
	}
}

// Draw renders the button with its label centered and truncated to fit.
func (b *Button) Draw(c Canvas) {
	c.FillRect(b.bounds, b.fillColor())
	c.StrokeRect(b.bounds, b.style.BorderThickness, b.borderColor())

	size := b.style.FontSize
	label := TruncateText(c, b.label, size, b.bounds.W-b.style.Padding*2)
	x := b.bounds.X + (b.bounds.W-c.MeasureText(label, size))/2
	y := textY(b.bounds, size)
	if b.pressed {
		x++
		y++
	}
	c.Text(label, x, y, size, b.textColor())
}

// Label returns the button label.
func (b *Button) Label() string { return b.label }

// SetLabel replaces the button label.
func (b *Button) SetLabel(label string) { b.label = label }

// Bounds returns the button rectangle.
func (b *Button) Bounds() Rect { return b.bounds }

// SetBounds moves or resizes the button.
func (b *Button) SetBounds(r Rect) { b.bounds = r }

// Style returns the button style.
func (b *Button) Style() Style { return b.style }

// ApplyStyle replaces the button style.
func (b *Button) ApplyStyle(s Style) { b.style = s }

// SetColors replaces the five primary style colors.
func (b *Button) SetColors(background, hover, pressed, border, text uint32) {
	b.style.BackgroundColor = background
	b.style.HoverColor = hover
	b.style.PressedColor = pressed
	b.style.BorderColor = border
	b.style.TextColor = text
}

// Enabled reports whether the button reacts to input.
func (b *Button) Enabled() bool { return b.enabled }

// SetEnabled enables or disables the button. A disabled button is never
// hovered, pressed or clicked.
func (b *Button) SetEnabled(enabled bool) {
	b.enabled = enabled
	if !enabled {
		b.hovered = false
		b.pressed = false
		b.clicked = false
	}
}

// IsHovered reports whether the pointer was over the button in the last Update.
func (b *Button) IsHovered() bool { return b.hovered }

// IsPressed reports whether the button was held down in the last Update.
func (b *Button) IsPressed() bool { return b.pressed }

// Progress returns the animation progress in [0, 1].
func (b *Button) Progress() float32 { return b.progress }
