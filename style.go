package interact

// Style defines the visual appearance of a widget. Widgets copy the values
// they use in ApplyStyle, so changing a Style after applying it has no effect.
type Style struct {
	// Background colors
	BackgroundColor uint32
	HoverColor      uint32
	PressedColor    uint32
	ActiveColor     uint32
	DisabledColor   uint32

	// Border colors
	BorderColor        uint32
	BorderHoverColor   uint32
	BorderPressedColor uint32
	BorderActiveColor  uint32

	// Text colors
	TextColor         uint32
	TextHoverColor    uint32
	TextPressedColor  uint32
	TextDisabledColor uint32

	CheckColor       uint32 // Checkbox mark
	PlaceholderColor uint32 // Empty text field hint

	FontSize int

	// Layout
	Padding         float32
	CornerRadius    float32
	BorderThickness float32
}

// DefaultStyle returns the default light gray style.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: ColorLightGray,
		HoverColor:      RGBA(200, 200, 200, 255),
		PressedColor:    ColorDarkGray,
		ActiveColor:     RGBA(100, 150, 255, 255),
		DisabledColor:   RGBA(200, 200, 200, 128),

		BorderColor:        ColorBlack,
		BorderHoverColor:   RGBA(100, 100, 100, 255),
		BorderPressedColor: RGBA(50, 50, 50, 255),
		BorderActiveColor:  RGBA(50, 100, 200, 255),

		TextColor:         ColorBlack,
		TextHoverColor:    ColorBlack,
		TextPressedColor:  ColorWhite,
		TextDisabledColor: RGBA(128, 128, 128, 255),

		CheckColor:       ColorGreen,
		PlaceholderColor: RGBA(128, 128, 128, 255),

		FontSize: 20,

		Padding:         5,
		CornerRadius:    5,
		BorderThickness: 2,
	}
}

// NewStyle returns DefaultStyle with the five primary colors replaced.
// The hover text color follows text.
func NewStyle(background, hover, pressed, border, text uint32) Style {
	s := DefaultStyle()
	s.BackgroundColor = background
	s.HoverColor = hover
	s.PressedColor = pressed
	s.BorderColor = border
	s.TextColor = text
	s.TextHoverColor = text
	return s
}

// ModernBlueStyle returns a white style with blue accents.
func ModernBlueStyle() Style {
	return Style{
		BackgroundColor: ColorWhite,
		HoverColor:      RGBA(240, 248, 255, 255), // AliceBlue
		PressedColor:    RGBA(70, 130, 180, 255),  // SteelBlue
		ActiveColor:     RGBA(100, 150, 255, 255),
		DisabledColor:   RGBA(245, 245, 245, 255),

		BorderColor:        RGBA(200, 200, 200, 255),
		BorderHoverColor:   RGBA(100, 150, 255, 255),
		BorderPressedColor: RGBA(70, 130, 180, 255),
		BorderActiveColor:  RGBA(100, 150, 255, 255),

		TextColor:         RGBA(50, 50, 50, 255),
		TextHoverColor:    RGBA(50, 50, 50, 255),
		TextPressedColor:  ColorWhite,
		TextDisabledColor: RGBA(150, 150, 150, 255),

		CheckColor:       RGBA(100, 150, 255, 255),
		PlaceholderColor: RGBA(150, 150, 150, 255),

		FontSize: 16,

		Padding:         8,
		CornerRadius:    6,
		BorderThickness: 1.5,
	}
}

// DarkStyle returns a dark theme with blue accents.
func DarkStyle() Style {
	return Style{
		BackgroundColor: RGBA(40, 40, 40, 255),
		HoverColor:      RGBA(60, 60, 60, 255),
		PressedColor:    RGBA(80, 80, 80, 255),
		ActiveColor:     RGBA(100, 150, 255, 255),
		DisabledColor:   RGBA(30, 30, 30, 128),

		BorderColor:        RGBA(80, 80, 80, 255),
		BorderHoverColor:   RGBA(100, 150, 255, 255),
		BorderPressedColor: RGBA(120, 170, 255, 255),
		BorderActiveColor:  RGBA(100, 150, 255, 255),

		TextColor:         ColorWhite,
		TextHoverColor:    ColorWhite,
		TextPressedColor:  ColorWhite,
		TextDisabledColor: RGBA(100, 100, 100, 255),

		CheckColor:       RGBA(100, 150, 255, 255),
		PlaceholderColor: RGBA(100, 100, 100, 255),

		FontSize: 16,

		Padding:         8,
		CornerRadius:    6,
		BorderThickness: 1.5,
	}
}

// MinimalStyle returns a flat, low-contrast style.
func MinimalStyle() Style {
	return Style{
		BackgroundColor: ColorWhite,
		HoverColor:      RGBA(250, 250, 250, 255),
		PressedColor:    RGBA(240, 240, 240, 255),
		ActiveColor:     RGBA(245, 245, 245, 255),
		DisabledColor:   RGBA(248, 248, 248, 255),

		BorderColor:        RGBA(220, 220, 220, 255),
		BorderHoverColor:   RGBA(200, 200, 200, 255),
		BorderPressedColor: RGBA(180, 180, 180, 255),
		BorderActiveColor:  RGBA(100, 150, 255, 255),

		TextColor:         RGBA(50, 50, 50, 255),
		TextHoverColor:    RGBA(50, 50, 50, 255),
		TextPressedColor:  RGBA(50, 50, 50, 255),
		TextDisabledColor: RGBA(150, 150, 150, 255),

		CheckColor:       RGBA(100, 150, 255, 255),
		PlaceholderColor: RGBA(150, 150, 150, 255),

		FontSize: 14,

		Padding:         6,
		CornerRadius:    4,
		BorderThickness: 1,
	}
}

// WithBackgroundColors returns a copy with the background colors replaced.
func (s Style) WithBackgroundColors(background, hover, pressed uint32) Style {
	s.BackgroundColor = background
	s.HoverColor = hover
	s.PressedColor = pressed
	return s
}

// WithBorderColors returns a copy with the border colors replaced.
func (s Style) WithBorderColors(border, hover, pressed uint32) Style {
	s.BorderColor = border
	s.BorderHoverColor = hover
	s.BorderPressedColor = pressed
	return s
}

// WithTextColors returns a copy with the text colors replaced.
func (s Style) WithTextColors(text, hover, pressed uint32) Style {
	s.TextColor = text
	s.TextHoverColor = hover
	s.TextPressedColor = pressed
	return s
}

// WithFontSize returns a copy with the font size replaced.
func (s Style) WithFontSize(size int) Style {
	s.FontSize = size
	return s
}

// WithLayout returns a copy with padding, corner radius and border thickness replaced.
func (s Style) WithLayout(padding, cornerRadius, borderThickness float32) Style {
	s.Padding = padding
	s.CornerRadius = cornerRadius
	s.BorderThickness = borderThickness
	return s
}

// Widget presets.

// ButtonPrimary returns the blue call-to-action button style.
func ButtonPrimary() Style {
	return NewStyle(
		RGBA(100, 150, 255, 255),
		RGBA(120, 170, 255, 255),
		RGBA(80, 130, 235, 255),
		RGBA(80, 130, 235, 255),
		ColorWhite,
	)
}

// ButtonSecondary returns the muted gray button style.
func ButtonSecondary() Style {
	return NewStyle(
		RGBA(240, 240, 240, 255),
		RGBA(220, 220, 220, 255),
		RGBA(200, 200, 200, 255),
		RGBA(180, 180, 180, 255),
		RGBA(50, 50, 50, 255),
	)
}

// ButtonSuccess returns the green button style.
func ButtonSuccess() Style {
	return NewStyle(
		RGBA(40, 167, 69, 255),
		RGBA(60, 187, 89, 255),
		RGBA(20, 147, 49, 255),
		RGBA(20, 147, 49, 255),
		ColorWhite,
	)
}

// ButtonDanger returns the red button style.
func ButtonDanger() Style {
	return NewStyle(
		RGBA(220, 53, 69, 255),
		RGBA(240, 73, 89, 255),
		RGBA(200, 33, 49, 255),
		RGBA(200, 33, 49, 255),
		ColorWhite,
	)
}

// TextFieldStyle returns the minimal style with blue focus borders.
func TextFieldStyle() Style {
	return MinimalStyle().WithBorderColors(
		RGBA(200, 200, 200, 255),
		RGBA(100, 150, 255, 255),
		RGBA(100, 150, 255, 255),
	)
}

// CheckboxStyle returns the default checkbox style.
func CheckboxStyle() Style {
	return DefaultStyle().WithLayout(4, 3, 2)
}

// DropdownStyle returns the default dropdown style.
func DropdownStyle() Style {
	return DefaultStyle().WithLayout(5, 4, 1.5)
}

// StylePreset returns a named style and whether the name is known.
// Names match the theme file "base" key.
func StylePreset(name string) (Style, bool) {
	fn, ok := stylePresets[name]
	if !ok {
		return Style{}, false
	}
	return fn(), true
}

var stylePresets = map[string]func() Style{
	"default":          DefaultStyle,
	"modern_blue":      ModernBlueStyle,
	"dark":             DarkStyle,
	"minimal":          MinimalStyle,
	"button_primary":   ButtonPrimary,
	"button_secondary": ButtonSecondary,
	"button_success":   ButtonSuccess,
	"button_danger":    ButtonDanger,
	"textfield":        TextFieldStyle,
	"checkbox":         CheckboxStyle,
	"dropdown":         DropdownStyle,
}
