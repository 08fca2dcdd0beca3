package interact

import "testing"

func TestBitmapFontMeasureText(t *testing.T) {
	f := DefaultFont()

	tests := []struct {
		text string
		size float32
		want float32
	}{
		{"", 13, 0},
		{"abc", 13, 21},
		{"abc", 26, 42},
		{"héllo", 13, 35},
		{"a b", 0, 21}, // non-positive size renders at cell size
	}

	for _, tt := range tests {
		if got := f.MeasureText(tt.text, tt.size); got != tt.want {
			t.Errorf("MeasureText(%q, %v) = %v, want %v", tt.text, tt.size, got, tt.want)
		}
	}

	if got := f.LineHeight(26); got != 26 {
		t.Errorf("LineHeight(26) = %v, want 26", got)
	}
}

func TestBitmapFontGlyphQuads(t *testing.T) {
	f := NewBitmapFont(DefaultFont().face)

	quads := f.GlyphQuads("a b", 10, 20, 26)
	if len(quads) != 2 {
		t.Fatalf("got %d quads, want 2 (spaces are skipped)", len(quads))
	}

	first, second := quads[0], quads[1]
	if first.X0 != 10 || first.Y0 != 20 || first.X1 != 22 || first.Y1 != 46 {
		t.Errorf("first quad = %+v", first)
	}
	if second.X0 != 38 {
		t.Errorf("second quad starts at %v, want 38", second.X0)
	}
	if first.V0 == second.V0 {
		t.Error("different runes share an atlas cell")
	}
	if first.V0 < 0 || first.V1 > 1 || first.U1 <= 0 || first.U1 > 1 {
		t.Errorf("texture coordinates out of range: %+v", first)
	}
}

func TestBitmapFontFallbackGlyph(t *testing.T) {
	f := NewBitmapFont(DefaultFont().face)

	unknown := f.GlyphQuads("世", 0, 0, 13)[0]
	question := f.GlyphQuads("?", 0, 0, 13)[0]
	if unknown.V0 != question.V0 {
		t.Errorf("unknown rune maps to V0 %v, want the '?' cell %v", unknown.V0, question.V0)
	}
}

func TestBitmapFontAtlas(t *testing.T) {
	f := DefaultFont()
	a := f.Atlas()
	if a.Bounds().Dx() != f.CellWidth() {
		t.Errorf("atlas width %d, want one cell (%d)", a.Bounds().Dx(), f.CellWidth())
	}
	if a.Bounds().Dy()%f.CellHeight() != 0 {
		t.Errorf("atlas height %d is not a multiple of %d", a.Bounds().Dy(), f.CellHeight())
	}
}
