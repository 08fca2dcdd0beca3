package interact

import "math"

// TextField timing and layout constants.
const (
	// Caret is visible for the first half of each blink period.
	caretBlinkPeriod  float32 = 1.0
	caretVisibleUntil float32 = 0.5

	// A held backspace deletes once more after this many seconds.
	backspaceRepeatDelay float32 = 0.5
	// Hold timer value marking the repeat as spent until release.
	backspaceRepeatSpent float32 = 1.0

	textFieldInset       float32 = 5
	textFieldBorderWidth float32 = 2
)

// TextFieldActiveBorder is the border color of a field receiving keyboard input.
const TextFieldActiveBorder = ColorRed

// TextField is a single-line editable text field with a blinking caret.
//
// A primary press inside the field activates it and a press anywhere else
// deactivates it, so a press that hits no field deactivates every field.
// While active, Update inserts at most one typed character per frame and
// handles Backspace, Left, Right, Home and End.
type TextField struct {
	bounds    Rect
	text      []rune
	maxLength int
	cursor    int
	active    bool

	blinkTimer float32
	holdTimer  float32

	backgroundColor  uint32
	borderColor      uint32
	textColor        uint32
	placeholderColor uint32
	placeholder      string
	fontSize         int
}

// NewTextField creates an inactive, empty field holding at most maxLength
// characters. A negative maxLength is treated as 0.
func NewTextField(x, y, width, height float32, maxLength int) *TextField {
	if maxLength < 0 {
		maxLength = 0
	}
	return &TextField{
		bounds:           NewRect(x, y, width, height),
		text:             make([]rune, 0, maxLength),
		maxLength:        maxLength,
		backgroundColor:  ColorWhite,
		borderColor:      ColorBlack,
		textColor:        ColorBlack,
		placeholderColor: RGBA(128, 128, 128, 255),
		fontSize:         20,
	}
}

// Update advances the field by one frame.
// Steps run in a fixed order: blink timer, activation, then (only while
// active) insertion, backspace, repeat backspace and navigation.
func (tf *TextField) Update(in *InputState) {
	dt := frameDelta(in.DeltaTime)
	tf.blinkTimer = float32(math.Mod(float64(tf.blinkTimer+dt), float64(caretBlinkPeriod)))

	if in.MouseClicked(MouseButtonLeft) {
		tf.active = tf.bounds.Contains(in.MousePos())
	}

	if !tf.active {
		return
	}

	if ch, ok := in.CharPressed(); ok && len(tf.text) < tf.maxLength {
		tf.insert(ch)
	}

	if in.KeyPressed(KeyBackspace) {
		tf.deleteBeforeCursor()
	}

	if in.KeyDown(KeyBackspace) {
		if tf.holdTimer < backspaceRepeatSpent {
			tf.holdTimer += dt
			if tf.holdTimer > backspaceRepeatDelay {
				tf.holdTimer = backspaceRepeatSpent
				tf.deleteBeforeCursor()
			}
		}
	} else {
		tf.holdTimer = 0
	}

	if in.KeyPressed(KeyLeft) && tf.cursor > 0 {
		tf.cursor--
	}
	if in.KeyPressed(KeyRight) && tf.cursor < len(tf.text) {
		tf.cursor++
	}
	if in.KeyPressed(KeyHome) {
		tf.cursor = 0
	}
	if in.KeyPressed(KeyEnd) {
		tf.cursor = len(tf.text)
	}
}

func (tf *TextField) insert(ch rune) {
	tf.text = append(tf.text, 0)
	copy(tf.text[tf.cursor+1:], tf.text[tf.cursor:])
	tf.text[tf.cursor] = ch
	tf.cursor++
}

func (tf *TextField) deleteBeforeCursor() {
	if tf.cursor == 0 {
		return
	}
	tf.text = append(tf.text[:tf.cursor-1], tf.text[tf.cursor:]...)
	tf.cursor--
}

// Draw renders the field. It does not modify the field.
func (tf *TextField) Draw(c Canvas) {
	c.FillRect(tf.bounds, tf.backgroundColor)

	border := tf.borderColor
	if tf.active {
		border = TextFieldActiveBorder
	}
	c.StrokeRect(tf.bounds, textFieldBorderWidth, border)

	x := tf.bounds.X + textFieldInset
	y := textY(tf.bounds, tf.fontSize)

	switch {
	case len(tf.text) > 0:
		c.Text(string(tf.text), x, y, tf.fontSize, tf.textColor)
	case !tf.active && tf.placeholder != "":
		c.Text(tf.placeholder, x, y, tf.fontSize, tf.placeholderColor)
	}

	if tf.CaretVisible() {
		caretX := x + c.MeasureText(string(tf.text[:tf.cursor]), tf.fontSize)
		c.Line(caretX, y, caretX, y+float32(tf.fontSize), 1, tf.textColor)
	}
}

// CaretVisible reports whether Draw renders the caret this frame.
func (tf *TextField) CaretVisible() bool {
	return tf.active && tf.blinkTimer < caretVisibleUntil
}

// Text returns the current text.
func (tf *TextField) Text() string {
	return string(tf.text)
}

// SetValue replaces the text, truncated to the maximum length, and moves the
// cursor to its end.
func (tf *TextField) SetValue(v string) {
	tf.text = tf.text[:0]
	for _, r := range v {
		if len(tf.text) == tf.maxLength {
			break
		}
		tf.text = append(tf.text, r)
	}
	tf.cursor = len(tf.text)
}

// Clear empties the text.
func (tf *TextField) Clear() {
	tf.text = tf.text[:0]
	tf.cursor = 0
}

// Reset empties the text and deactivates the field.
func (tf *TextField) Reset() {
	tf.Clear()
	tf.active = false
}

// IsActive reports whether the field receives keyboard input.
func (tf *TextField) IsActive() bool {
	return tf.active
}

// Activate gives the field keyboard input and moves the cursor to the end.
func (tf *TextField) Activate() {
	tf.active = true
	tf.cursor = len(tf.text)
}

// Deactivate stops the field from receiving keyboard input.
func (tf *TextField) Deactivate() {
	tf.active = false
}

// CursorPosition returns the insertion point as a rune offset.
func (tf *TextField) CursorPosition() int {
	return tf.cursor
}

// SetCursorPosition moves the cursor. Positions outside [0, len] are ignored.
func (tf *TextField) SetCursorPosition(p int) {
	if p < 0 || p > len(tf.text) {
		return
	}
	tf.cursor = p
}

// MaxLength returns the maximum number of characters.
func (tf *TextField) MaxLength() int {
	return tf.maxLength
}

// SetMaxLength changes the maximum length, truncating the text and clamping
// the cursor if needed. Non-positive values are ignored.
func (tf *TextField) SetMaxLength(n int) {
	if n <= 0 {
		return
	}
	tf.maxLength = n
	if len(tf.text) > n {
		tf.text = tf.text[:n]
	}
	if tf.cursor > n {
		tf.cursor = n
	}
}

// Len returns the number of characters in the text.
func (tf *TextField) Len() int {
	return len(tf.text)
}

// IsEmpty reports whether the text is empty.
func (tf *TextField) IsEmpty() bool {
	return len(tf.text) == 0
}

// IsFull reports whether the text has reached the maximum length.
func (tf *TextField) IsFull() bool {
	return len(tf.text) == tf.maxLength
}

// IsValid reports whether the text is non-empty and within the maximum length.
func (tf *TextField) IsValid() bool {
	return len(tf.text) > 0 && len(tf.text) <= tf.maxLength
}

// Bounds returns the field rectangle.
func (tf *TextField) Bounds() Rect {
	return tf.bounds
}

// SetBounds moves or resizes the field.
func (tf *TextField) SetBounds(r Rect) {
	tf.bounds = r
}

// SetColors sets the background, border and text colors.
func (tf *TextField) SetColors(background, border, text uint32) {
	tf.backgroundColor = background
	tf.borderColor = border
	tf.textColor = text
}

// Color accessors.
func (tf *TextField) BackgroundColor() uint32 { return tf.backgroundColor }
func (tf *TextField) BorderColor() uint32     { return tf.borderColor }
func (tf *TextField) TextColor() uint32       { return tf.textColor }

// Color setters. Unlike SetColors they change one color at a time.
func (tf *TextField) SetBackgroundColor(c uint32) { tf.backgroundColor = c }
func (tf *TextField) SetBorderColor(c uint32)     { tf.borderColor = c }
func (tf *TextField) SetTextColor(c uint32)       { tf.textColor = c }

// FontSize returns the font size in pixels.
func (tf *TextField) FontSize() int {
	return tf.fontSize
}

// SetFontSize sets the font size. Non-positive sizes are ignored.
func (tf *TextField) SetFontSize(size int) {
	if size > 0 {
		tf.fontSize = size
	}
}

// Placeholder returns the hint shown while the field is empty and inactive.
func (tf *TextField) Placeholder() string {
	return tf.placeholder
}

// SetPlaceholder sets the hint shown while the field is empty and inactive.
func (tf *TextField) SetPlaceholder(s string) {
	tf.placeholder = s
}

// ApplyStyle copies the style's background, border, text and placeholder
// colors and its font size. The active border stays TextFieldActiveBorder.
func (tf *TextField) ApplyStyle(s Style) {
	tf.SetColors(s.BackgroundColor, s.BorderColor, s.TextColor)
	tf.placeholderColor = s.PlaceholderColor
	tf.SetFontSize(s.FontSize)
}
