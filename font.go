package interact

import (
	"image"
	"image/draw"

	"golang.org/x/image/font/basicfont"
)

// Font measures text and produces glyph quads for a DrawList.
//
// Sizes are pixel heights: a font asked to render at size 20 scales its glyph
// cells so one line is 20 pixels tall. Widgets only ever pass their fontSize,
// so any Font implementation can be swapped in by the host.
type Font interface {
	// TextureID returns the texture holding the glyph atlas (0 = not uploaded).
	TextureID() uint32

	// MeasureText returns the pixel width of text rendered at size.
	MeasureText(text string, size float32) float32

	// GlyphQuads returns one quad per rune with its top-left corner at (x, y).
	// The returned slice is reused by the next call.
	GlyphQuads(text string, x, y, size float32) []GlyphQuad

	// LineHeight returns the line height at size.
	LineHeight(size float32) float32
}

// BitmapFont is a monospace Font backed by a basicfont face.
// The face mask is a vertical strip of glyph cells and doubles as the atlas
// that GPU backends upload (see Atlas and SetTextureID).
type BitmapFont struct {
	face      *basicfont.Face
	atlas     *image.Alpha
	textureID uint32
	quads     []GlyphQuad
}

var defaultFont = NewBitmapFont(basicfont.Face7x13)

// DefaultFont returns the shared 7x13 bitmap font.
func DefaultFont() *BitmapFont {
	return defaultFont
}

// NewBitmapFont wraps a basicfont face.
func NewBitmapFont(face *basicfont.Face) *BitmapFont {
	return &BitmapFont{
		face:  face,
		atlas: toAlpha(face.Mask),
		quads: make([]GlyphQuad, 0, 64),
	}
}

func toAlpha(img image.Image) *image.Alpha {
	if a, ok := img.(*image.Alpha); ok {
		return a
	}
	a := image.NewAlpha(img.Bounds())
	draw.Draw(a, a.Bounds(), img, img.Bounds().Min, draw.Src)
	return a
}

// Atlas returns the glyph mask, one cell of CellWidth x CellHeight per glyph
// stacked vertically.
func (f *BitmapFont) Atlas() *image.Alpha {
	return f.atlas
}

// CellWidth returns the width of one glyph cell in the atlas.
func (f *BitmapFont) CellWidth() int { return f.face.Width }

// CellHeight returns the height of one glyph cell in the atlas.
func (f *BitmapFont) CellHeight() int { return f.face.Height }

// SetTextureID records the texture the backend uploaded Atlas into.
func (f *BitmapFont) SetTextureID(id uint32) {
	f.textureID = id
}

// TextureID implements Font.
func (f *BitmapFont) TextureID() uint32 {
	return f.textureID
}

func (f *BitmapFont) scale(size float32) float32 {
	if size <= 0 {
		return 1
	}
	return size / float32(f.face.Height)
}

// MeasureText implements Font.
func (f *BitmapFont) MeasureText(text string, size float32) float32 {
	n := 0
	for range text {
		n++
	}
	return float32(n*f.face.Advance) * f.scale(size)
}

// LineHeight implements Font.
func (f *BitmapFont) LineHeight(size float32) float32 {
	return float32(f.face.Height) * f.scale(size)
}

// glyphIndex returns the atlas cell for r, falling back to '?'.
func (f *BitmapFont) glyphIndex(r rune) int {
	for _, rg := range f.face.Ranges {
		if r >= rg.Low && r < rg.High {
			return rg.Offset + int(r-rg.Low)
		}
	}
	if r != '?' {
		return f.glyphIndex('?')
	}
	return 0
}

// GlyphQuads implements Font.
func (f *BitmapFont) GlyphQuads(text string, x, y, size float32) []GlyphQuad {
	f.quads = f.quads[:0]
	s := f.scale(size)
	cellW := float32(f.face.Width)
	cellH := float32(f.face.Height)
	atlasW := float32(f.atlas.Bounds().Dx())
	atlasH := float32(f.atlas.Bounds().Dy())
	if atlasW == 0 || atlasH == 0 {
		return f.quads
	}

	i := 0
	for _, r := range text {
		px := x + float32(i*f.face.Advance)*s
		i++
		if r == ' ' {
			continue
		}
		row := float32(f.glyphIndex(r))
		f.quads = append(f.quads, GlyphQuad{
			X0: px, Y0: y,
			X1: px + cellW*s, Y1: y + cellH*s,
			U0: 0, V0: row * cellH / atlasH,
			U1: cellW / atlasW, V1: (row + 1) * cellH / atlasH,
		})
	}
	return f.quads
}
