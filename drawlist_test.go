package interact

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestDrawListPool(t *testing.T) {
	dl1 := AcquireDrawList(nil)
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}
	dl1.AddRect(0, 0, 100, 100, ColorWhite)
	ReleaseDrawList(dl1)

	dl2 := AcquireDrawList(nil)
	defer ReleaseDrawList(dl2)
	if len(dl2.VtxBuffer) != 0 || len(dl2.IdxBuffer) != 0 || len(dl2.CmdBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}
	if dl2.Font() != DefaultFont() {
		t.Error("nil font should fall back to DefaultFont")
	}
}

func TestDrawListAddRect(t *testing.T) {
	dl := AcquireDrawList(nil)
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, ColorWhite)
	dl.AddRect(0, 0, 10, 10, ColorTransparent)
	dl.AddRect(0, 0, 0, 10, ColorWhite)

	if len(dl.VtxBuffer) != 4 || len(dl.IdxBuffer) != 6 {
		t.Errorf("got %d vertices, %d indices; want 4, 6", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
}

func TestDrawListAddRectOutline(t *testing.T) {
	dl := AcquireDrawList(nil)
	defer ReleaseDrawList(dl)

	dl.AddRectOutline(0, 0, 20, 10, ColorBlack, 2)
	if len(dl.VtxBuffer) != 16 {
		t.Errorf("got %d vertices, want 16", len(dl.VtxBuffer))
	}

	// Thickness is clamped so the sides never overlap.
	dl.Clear()
	dl.AddRectOutline(0, 0, 20, 10, ColorBlack, 50)
	for _, v := range dl.VtxBuffer {
		if v.Pos[1] < 0 || v.Pos[1] > 10 {
			t.Fatalf("vertex %v outside the rectangle", v.Pos)
		}
	}
}

func TestDrawListAddLine(t *testing.T) {
	dl := AcquireDrawList(nil)
	defer ReleaseDrawList(dl)

	dl.AddLine(0, 0, 10, 0, ColorBlack, 2)

	want := [][2]float32{{0, 1}, {10, 1}, {10, -1}, {0, -1}}
	if len(dl.VtxBuffer) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(dl.VtxBuffer), len(want))
	}
	for i, v := range dl.VtxBuffer {
		if v.Pos != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, v.Pos, want[i])
		}
	}
}

func TestDrawListTextureBatching(t *testing.T) {
	font := NewBitmapFont(basicfont.Face7x13)
	font.SetTextureID(7)
	dl := AcquireDrawList(font)
	defer ReleaseDrawList(dl)

	dl.FillRect(NewRect(0, 0, 10, 10), ColorWhite)
	dl.StrokeRect(NewRect(0, 0, 10, 10), 1, ColorBlack)
	dl.Text("ab", 0, 0, 13, ColorBlack)
	dl.Text("c d", 0, 20, 13, ColorBlack)
	dl.Line(0, 0, 5, 5, 1, ColorBlack)
	dl.Finalize()

	want := []struct {
		texture uint32
		elems   uint32
	}{
		{0, 6 + 4*6},
		{7, 4 * 6},
		{0, 6},
	}
	if len(dl.CmdBuffer) != len(want) {
		t.Fatalf("got %d commands, want %d: %+v", len(dl.CmdBuffer), len(want), dl.CmdBuffer)
	}
	for i, w := range want {
		cmd := dl.CmdBuffer[i]
		if cmd.TextureID != w.texture || cmd.ElemCount != w.elems {
			t.Errorf("cmd %d: texture %d elems %d, want texture %d elems %d",
				i, cmd.TextureID, cmd.ElemCount, w.texture, w.elems)
		}
	}
}

func TestDrawListSplitsAt16BitIndices(t *testing.T) {
	dl := AcquireDrawList(nil)
	defer ReleaseDrawList(dl)

	const quads = 16384 // 65536 vertices
	for i := 0; i < quads; i++ {
		dl.AddRect(float32(i%100), 0, 1, 1, ColorWhite)
	}
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("got %d commands, want 2", len(dl.CmdBuffer))
	}

	var total uint32
	for _, cmd := range dl.CmdBuffer {
		total += cmd.ElemCount
	}
	if total != quads*6 {
		t.Errorf("total elements = %d, want %d", total, quads*6)
	}

	second := dl.CmdBuffer[1]
	if second.VertexOffset != 16383*4 {
		t.Errorf("second command vertex offset = %d, want %d", second.VertexOffset, 16383*4)
	}
	if idx := dl.IdxBuffer[second.IndexOffset]; idx != 0 {
		t.Errorf("second command starts at index %d, want 0", idx)
	}
}

func TestDrawListClipRect(t *testing.T) {
	dl := AcquireDrawList(nil)
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, ColorWhite)
	dl.PushClipRect(5, 5, 50, 50)
	dl.AddRect(0, 0, 10, 10, ColorWhite)
	dl.PopClipRect()
	dl.AddRect(0, 0, 10, 10, ColorWhite)
	dl.PopClipRect() // no-op on an empty stack
	dl.Finalize()

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("got %d commands, want 3", len(dl.CmdBuffer))
	}
	if clip := dl.CmdBuffer[1].ClipRect; clip != [4]float32{5, 5, 50, 50} {
		t.Errorf("clipped command rect = %v", clip)
	}
	if dl.CmdBuffer[0].ClipRect != dl.CmdBuffer[2].ClipRect {
		t.Error("PopClipRect did not restore the previous clip")
	}
}

func TestDrawListFinalizeDropsEmptyCommands(t *testing.T) {
	dl := AcquireDrawList(nil)
	defer ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 1, 1)
	dl.PopClipRect()
	dl.SetTexture(3)
	dl.Finalize()

	if len(dl.CmdBuffer) != 0 {
		t.Errorf("got %d commands, want 0", len(dl.CmdBuffer))
	}
}

func TestDrawListMeasureText(t *testing.T) {
	dl := AcquireDrawList(nil)
	defer ReleaseDrawList(dl)

	if got := dl.MeasureText("abc", 13); got != 21 {
		t.Errorf("MeasureText = %v, want 21", got)
	}
	if got := dl.MeasureText("", 13); got != 0 {
		t.Errorf("MeasureText(\"\") = %v, want 0", got)
	}
}

func TestWidgetsDrawOnDrawList(t *testing.T) {
	tf := NewTextField(0, 0, 100, 30, 10)
	tf.SetValue("hi")
	ws := Widgets{tf, NewButton(0, 40, 100, 30, "OK"), NewCheckbox(0, 80, 20, "c"), newLetters()}

	dl := AcquireDrawList(nil)
	defer ReleaseDrawList(dl)
	ws.DrawAll(dl)
	dl.Finalize()

	if len(dl.VtxBuffer) == 0 || len(dl.CmdBuffer) == 0 {
		t.Fatal("widgets produced no geometry")
	}
	for i, cmd := range dl.CmdBuffer {
		if cmd.IndexOffset+cmd.ElemCount > uint32(len(dl.IdxBuffer)) {
			t.Errorf("cmd %d indexes past the index buffer", i)
		}
	}
}

func BenchmarkDrawListAddRect(b *testing.B) {
	dl := AcquireDrawList(nil)
	defer ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddRect(float32(i%100), float32(i%100), 50, 50, ColorWhite)
	}
}

func BenchmarkTextFieldFrame(b *testing.B) {
	tf := NewTextField(0, 0, 200, 30, 64)
	tf.SetValue("The quick brown fox")
	tf.Activate()
	in := NewInputState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in.BeginFrame(0.016)
		tf.Update(in)
		dl := AcquireDrawList(nil)
		tf.Draw(dl)
		dl.Finalize()
		ReleaseDrawList(dl)
	}
}
