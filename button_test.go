package interact

import "testing"

func TestButtonClickOnRelease(t *testing.T) {
	b := NewButton(10, 10, 100, 40, "OK")
	d := newDriver(b)

	d.step(0.0625, mouseAt(50, 30))
	if !b.IsHovered() || b.IsPressed() || b.Clicked() {
		t.Fatalf("hover: hovered=%v pressed=%v clicked=%v", b.IsHovered(), b.IsPressed(), b.Clicked())
	}
	if got := b.Progress(); got != 0.5 {
		t.Errorf("hover progress = %v, want 0.5", got)
	}

	d.step(0.0625, mouseButton(true))
	if !b.IsPressed() || b.Clicked() {
		t.Fatalf("press: pressed=%v clicked=%v", b.IsPressed(), b.Clicked())
	}
	if got := b.Progress(); got != 1 {
		t.Errorf("press progress = %v, want 1", got)
	}

	d.step(0, mouseButton(false))
	if !b.Clicked() {
		t.Fatal("release over the button did not click")
	}

	d.step(0)
	if b.Clicked() {
		t.Error("click persisted into the next frame")
	}
}

func TestButtonReleaseOutsideDoesNotClick(t *testing.T) {
	b := NewButton(10, 10, 100, 40, "OK")
	d := newDriver(b)

	d.step(0, mouseAt(50, 30), mouseButton(true))
	d.step(0, mouseAt(300, 300))
	d.step(0, mouseButton(false))

	if b.Clicked() {
		t.Error("release outside the button clicked")
	}
}

func TestButtonDisabled(t *testing.T) {
	b := NewButton(10, 10, 100, 40, "OK")
	b.SetEnabled(false)
	d := newDriver(b)

	d.click(50, 30)

	if b.Clicked() || b.IsHovered() || b.IsPressed() {
		t.Errorf("disabled button: clicked=%v hovered=%v pressed=%v", b.Clicked(), b.IsHovered(), b.IsPressed())
	}

	c := &recordCanvas{}
	b.Draw(c)
	if fills := c.of("fill"); len(fills) != 1 || fills[0].color != b.Style().DisabledColor {
		t.Errorf("disabled fill = %+v", fills)
	}
	if texts := c.of("text"); len(texts) != 1 || texts[0].color != b.Style().TextDisabledColor {
		t.Errorf("disabled text = %+v", texts)
	}
}

func TestButtonAnimationEasesBack(t *testing.T) {
	b := NewButton(10, 10, 100, 40, "OK")
	d := newDriver(b)

	d.step(1, mouseAt(50, 30))
	d.step(0.03125, mouseAt(500, 500))
	if got := b.Progress(); got != 0.25 {
		t.Errorf("progress = %v, want 0.25", got)
	}
	d.step(1)
	if got := b.Progress(); got != 0 {
		t.Errorf("progress = %v, want 0", got)
	}
}

func TestButtonDrawCentersLabel(t *testing.T) {
	b := NewButton(10, 10, 100, 40, "OK")
	c := &recordCanvas{}

	b.Draw(c)

	texts := c.of("text")
	if len(texts) != 1 {
		t.Fatalf("text ops = %+v", texts)
	}
	if texts[0].x1 != 50 || texts[0].y1 != 20 {
		t.Errorf("label at (%v, %v), want (50, 20)", texts[0].x1, texts[0].y1)
	}
	if fills := c.of("fill"); len(fills) != 1 || fills[0].color != b.Style().BackgroundColor {
		t.Errorf("idle fill = %+v", fills)
	}

	d := newDriver(b)
	d.step(0, mouseAt(50, 30), mouseButton(true))
	c = &recordCanvas{}
	b.Draw(c)
	texts = c.of("text")
	if len(texts) != 1 || texts[0].x1 != 51 || texts[0].y1 != 21 {
		t.Errorf("pressed label = %+v, want offset by one pixel", texts)
	}
	if strokes := c.of("stroke"); len(strokes) != 1 || strokes[0].color != b.Style().BorderPressedColor {
		t.Errorf("pressed border = %+v", strokes)
	}
}

func TestButtonDrawTruncatesLabel(t *testing.T) {
	b := NewButton(0, 0, 100, 40, "Hello World")
	c := &recordCanvas{}

	b.Draw(c)

	texts := c.of("text")
	if len(texts) != 1 || texts[0].text != "Hello ..." {
		t.Errorf("text ops = %+v, want %q", texts, "Hello ...")
	}
}

func TestButtonSetColors(t *testing.T) {
	b := NewButton(0, 0, 100, 40, "OK")
	b.SetColors(ColorRed, ColorGreen, ColorBlue, ColorGray, ColorWhite)

	s := b.Style()
	if s.BackgroundColor != ColorRed || s.HoverColor != ColorGreen || s.PressedColor != ColorBlue ||
		s.BorderColor != ColorGray || s.TextColor != ColorWhite {
		t.Errorf("SetColors style = %+v", s)
	}

	b.ApplyStyle(ButtonPrimary())
	if b.Style() != ButtonPrimary() {
		t.Error("ApplyStyle did not replace the style")
	}
}
