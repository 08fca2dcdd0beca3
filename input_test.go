package interact

import (
	"math"
	"testing"
)

func TestInputStateMouseEdges(t *testing.T) {
	in := NewInputState()

	in.BeginFrame(0.016)
	in.SetMouseButton(MouseButtonLeft, true)
	if !in.MouseClicked(MouseButtonLeft) || !in.MouseDown(MouseButtonLeft) {
		t.Fatal("press frame: expected clicked and down")
	}

	in.BeginFrame(0.016)
	in.SetMouseButton(MouseButtonLeft, true)
	if in.MouseClicked(MouseButtonLeft) {
		t.Error("held button reported a new click")
	}
	if !in.MouseDown(MouseButtonLeft) {
		t.Error("held button is not down")
	}

	in.BeginFrame(0.016)
	in.SetMouseButton(MouseButtonLeft, false)
	if !in.MouseReleased(MouseButtonLeft) || in.MouseDown(MouseButtonLeft) {
		t.Error("release frame: expected released and up")
	}

	in.BeginFrame(0.016)
	if in.MouseReleased(MouseButtonLeft) {
		t.Error("release persisted into the next frame")
	}
}

func TestInputStateKeyEdges(t *testing.T) {
	in := NewInputState()

	in.BeginFrame(0)
	in.SetKey(KeyBackspace, true)
	if !in.KeyPressed(KeyBackspace) || !in.KeyDown(KeyBackspace) {
		t.Fatal("press frame: expected pressed and down")
	}

	in.BeginFrame(0)
	if in.KeyPressed(KeyBackspace) || !in.KeyDown(KeyBackspace) {
		t.Error("held key: expected down without a new press")
	}

	in.BeginFrame(0)
	in.SetKey(KeyBackspace, false)
	if !in.KeyReleased(KeyBackspace) || in.KeyDown(KeyBackspace) {
		t.Error("release frame: expected released and up")
	}
}

func TestInputStateOutOfRange(t *testing.T) {
	in := NewInputState()

	in.SetKey(KeyNone, true)
	in.SetKey(KeyCount, true)
	in.SetMouseButton(MouseButtonCount, true)
	in.SetMouseButton(-1, true)

	if in.KeyDown(KeyCount) || in.KeyPressed(-1) || in.MouseDown(MouseButtonCount) || in.MouseClicked(-1) {
		t.Error("out-of-range keys or buttons reported state")
	}
}

func TestInputStateChars(t *testing.T) {
	in := NewInputState()
	in.BeginFrame(0)

	if _, ok := in.CharPressed(); ok {
		t.Error("empty frame reported a character")
	}

	in.AddInputChar('\b')
	in.AddInputChar('\n')
	in.AddInputChar('é')
	in.AddInputChar('x')

	if got := string(in.InputChars); got != "éx" {
		t.Errorf("InputChars = %q, want %q", got, "éx")
	}
	if r, ok := in.CharPressed(); !ok || r != 'é' {
		t.Errorf("CharPressed() = %q, %v", r, ok)
	}

	in.BeginFrame(0)
	if len(in.InputChars) != 0 {
		t.Error("BeginFrame kept last frame's characters")
	}
}

func TestInputStateBeginFrame(t *testing.T) {
	in := NewInputState()
	in.SetMousePos(3, 4)
	in.SetMouseWheel(1, -2)

	in.BeginFrame(-1)

	if in.DeltaTime != 0 {
		t.Errorf("negative delta stored as %v", in.DeltaTime)
	}
	if in.MouseWheelX != 0 || in.MouseWheelY != 0 {
		t.Error("BeginFrame kept the wheel delta")
	}
	if p := in.MousePos(); p != (Vec2{X: 3, Y: 4}) {
		t.Errorf("BeginFrame moved the mouse to %v", p)
	}
}

func TestInputStateBeginFrameNonFinite(t *testing.T) {
	in := NewInputState()
	tests := []struct {
		name string
		dt   float32
		want float32
	}{
		{"nan", float32(math.NaN()), 0},
		{"+inf", float32(math.Inf(1)), 0},
		{"-inf", float32(math.Inf(-1)), 0},
		{"finite", 0.25, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in.BeginFrame(tt.dt)
			if in.DeltaTime != tt.want {
				t.Errorf("BeginFrame(%v): DeltaTime = %v, want %v", tt.dt, in.DeltaTime, tt.want)
			}
		})
	}
}

func TestKeyName(t *testing.T) {
	for k := KeyNone + 1; k < KeyCount; k++ {
		if KeyName(k) == "?" {
			t.Errorf("key %d has no name", k)
		}
	}
}
