package interact

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme holds one style per widget kind.
type Theme struct {
	Name      string
	Base      Style
	Button    Style
	TextField Style
	Checkbox  Style
	Dropdown  Style
}

// DefaultTheme returns a theme using DefaultStyle for every widget.
func DefaultTheme() Theme {
	t, _ := ThemeByName("default")
	return t
}

// ThemeByName builds a theme that uses the named preset for every widget.
func ThemeByName(name string) (Theme, error) {
	s, ok := StylePreset(name)
	if !ok {
		return Theme{}, fmt.Errorf("unknown style preset %q", name)
	}
	return Theme{Name: name, Base: s, Button: s, TextField: s, Checkbox: s, Dropdown: s}, nil
}

// Apply copies the matching style onto each widget. Widgets of unknown kinds
// that have an ApplyStyle method receive the base style.
func (t Theme) Apply(ws ...Widget) {
	for _, w := range ws {
		switch w := w.(type) {
		case *Button:
			w.ApplyStyle(t.Button)
		case *TextField:
			w.ApplyStyle(t.TextField)
		case *Checkbox:
			w.ApplyStyle(t.Checkbox)
		case interface{ asDropdown() *Dropdown }:
			w.asDropdown().ApplyStyle(t.Dropdown)
		case interface{ ApplyStyle(Style) }:
			w.ApplyStyle(t.Base)
		}
	}
}

func (d *Dropdown) asDropdown() *Dropdown { return d }

// themeFile is the YAML layout of a theme:
//
//	name: night
//	base: dark
//	font_size: 18
//	colors:
//	  border: "#505050"
//	button:
//	  base: button_primary
//	textfield:
//	  colors:
//	    background: "#1E1E1EFF"
//
// Top-level settings build the base style; each widget section starts from
// its own base preset (or the theme base) and applies its overrides.
type themeFile struct {
	Name      string `yaml:"name"`
	styleSpec `yaml:",inline"`
	Button    *styleSpec `yaml:"button"`
	TextField *styleSpec `yaml:"textfield"`
	Checkbox  *styleSpec `yaml:"checkbox"`
	Dropdown  *styleSpec `yaml:"dropdown"`
}

type styleSpec struct {
	Base            string            `yaml:"base"`
	FontSize        *int              `yaml:"font_size"`
	Padding         *float32          `yaml:"padding"`
	CornerRadius    *float32          `yaml:"corner_radius"`
	BorderThickness *float32          `yaml:"border_thickness"`
	Colors          map[string]string `yaml:"colors"`
}

var styleColorFields = map[string]func(*Style) *uint32{
	"background":     func(s *Style) *uint32 { return &s.BackgroundColor },
	"hover":          func(s *Style) *uint32 { return &s.HoverColor },
	"pressed":        func(s *Style) *uint32 { return &s.PressedColor },
	"active":         func(s *Style) *uint32 { return &s.ActiveColor },
	"disabled":       func(s *Style) *uint32 { return &s.DisabledColor },
	"border":         func(s *Style) *uint32 { return &s.BorderColor },
	"border_hover":   func(s *Style) *uint32 { return &s.BorderHoverColor },
	"border_pressed": func(s *Style) *uint32 { return &s.BorderPressedColor },
	"border_active":  func(s *Style) *uint32 { return &s.BorderActiveColor },
	"text":           func(s *Style) *uint32 { return &s.TextColor },
	"text_hover":     func(s *Style) *uint32 { return &s.TextHoverColor },
	"text_pressed":   func(s *Style) *uint32 { return &s.TextPressedColor },
	"text_disabled":  func(s *Style) *uint32 { return &s.TextDisabledColor },
	"check":          func(s *Style) *uint32 { return &s.CheckColor },
	"placeholder":    func(s *Style) *uint32 { return &s.PlaceholderColor },
}

// resolve builds a style from spec, starting at fallback when no base is named.
func (spec *styleSpec) resolve(fallback Style) (Style, error) {
	s := fallback
	if spec == nil {
		return s, nil
	}
	if spec.Base != "" {
		preset, ok := StylePreset(spec.Base)
		if !ok {
			return Style{}, fmt.Errorf("unknown base %q", spec.Base)
		}
		s = preset
	}
	if spec.FontSize != nil {
		if *spec.FontSize <= 0 {
			return Style{}, fmt.Errorf("font_size must be positive, got %d", *spec.FontSize)
		}
		s.FontSize = *spec.FontSize
	}
	if spec.Padding != nil {
		s.Padding = *spec.Padding
	}
	if spec.CornerRadius != nil {
		s.CornerRadius = *spec.CornerRadius
	}
	if spec.BorderThickness != nil {
		s.BorderThickness = *spec.BorderThickness
	}
	for key, value := range spec.Colors {
		field, ok := styleColorFields[key]
		if !ok {
			return Style{}, fmt.Errorf("unknown color %q", key)
		}
		c, err := ParseHexColor(value)
		if err != nil {
			return Style{}, fmt.Errorf("color %q: %w", key, err)
		}
		*field(&s) = c
	}
	return s, nil
}

// LoadTheme reads a YAML theme. An empty document yields DefaultTheme.
func LoadTheme(r io.Reader) (Theme, error) {
	var f themeFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultTheme(), nil
		}
		return Theme{}, fmt.Errorf("decode theme: %w", err)
	}

	t := DefaultTheme()
	if f.Name != "" {
		t.Name = f.Name
	}

	base, err := f.styleSpec.resolve(DefaultStyle())
	if err != nil {
		return Theme{}, fmt.Errorf("theme base: %w", err)
	}
	t.Base = base

	sections := []struct {
		name string
		spec *styleSpec
		dst  *Style
	}{
		{"button", f.Button, &t.Button},
		{"textfield", f.TextField, &t.TextField},
		{"checkbox", f.Checkbox, &t.Checkbox},
		{"dropdown", f.Dropdown, &t.Dropdown},
	}
	for _, sec := range sections {
		s, err := sec.spec.resolve(base)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", sec.name, err)
		}
		*sec.dst = s
	}
	return t, nil
}

// LoadThemeFile reads a YAML theme from path.
func LoadThemeFile(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("open theme: %w", err)
	}
	defer f.Close()

	t, err := LoadTheme(f)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" into a packed color.
// The leading '#' is optional.
func ParseHexColor(s string) (uint32, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return 0, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xFF
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
