package window

import (
	"testing"

	"github.com/foliodesk/folio/internal/config"
)

func TestWindow_Geometry(t *testing.T) {
	w := &Window{Width: 20, Height: 10, CenterX: 40, CenterY: 12}

	if got := w.Left(); got != 30 {
		t.Errorf("Left = %d, want 30", got)
	}
	if got := w.Top(); got != 7 {
		t.Errorf("Top = %d, want 7", got)
	}
	if got := w.Right(); got != 50 {
		t.Errorf("Right = %d, want 50", got)
	}
	if got := w.Bottom(); got != 17 {
		t.Errorf("Bottom = %d, want 17", got)
	}
}

func TestWindow_Contains(t *testing.T) {
	w := &Window{Width: 20, Height: 10, CenterX: 40, CenterY: 12}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 30, 7, true},
		{"bottom-right inside", 49, 16, true},
		{"right edge outside", 50, 12, false},
		{"bottom edge outside", 40, 17, false},
		{"left of frame", 29, 12, false},
		{"above frame", 40, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestWindow_OnTitleBar(t *testing.T) {
	w := &Window{Width: 20, Height: 10, CenterX: 40, CenterY: 12}

	if !w.OnTitleBar(35, 7) {
		t.Error("top row should count as the title bar")
	}
	if w.OnTitleBar(35, 8) {
		t.Error("second row is not the title bar")
	}
	if w.OnTitleBar(50, 7) {
		t.Error("title bar ends at the right edge")
	}
}

func TestWindow_OnCloseButton(t *testing.T) {
	w := &Window{Width: 20, Height: 10, CenterX: 40, CenterY: 12}

	// Frame spans x 30..49; the button sits just inside the corner cell.
	start := w.Right() - 1 - config.CloseButtonSpan
	for x := start; x < w.Right()-1; x++ {
		if !w.OnCloseButton(x, 7) {
			t.Errorf("OnCloseButton(%d, 7) = false, want true", x)
		}
	}
	if w.OnCloseButton(start-1, 7) {
		t.Error("cell left of the button should miss")
	}
	if w.OnCloseButton(w.Right()-1, 7) {
		t.Error("corner cell should miss")
	}
	if w.OnCloseButton(start, 8) {
		t.Error("button only exists on the title row")
	}
}

func TestWindow_ClampCenter(t *testing.T) {
	const screenW, screenH = 80, 24
	maxCY := screenH - config.ReservedBottomRows - 5 // 10-tall window

	tests := []struct {
		name           string
		width, height  int
		cx, cy         int
		wantCX, wantCY int
	}{
		{"in range unchanged", 20, 10, 40, 10, 40, 10},
		{"clamped left", 20, 10, 3, 10, 10, 10},
		{"clamped right", 20, 10, 200, 10, 70, 10},
		{"clamped top", 20, 10, 40, 0, 40, 5},
		{"clamped above dock", 20, 10, 40, 23, 40, maxCY},
		{"negative both axes", 20, 10, -50, -50, 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Window{Width: tt.width, Height: tt.height}
			gotX, gotY := w.ClampCenter(tt.cx, tt.cy, screenW, screenH)
			if gotX != tt.wantCX || gotY != tt.wantCY {
				t.Errorf("ClampCenter(%d, %d) = (%d, %d), want (%d, %d)",
					tt.cx, tt.cy, gotX, gotY, tt.wantCX, tt.wantCY)
			}
		})
	}
}

func TestWindow_ClampCenterOddWidth(t *testing.T) {
	// A 21-wide frame has asymmetric halves; both edges must still land
	// inside the screen at the clamp bounds.
	w := &Window{Width: 21, Height: 9}
	const screenW, screenH = 80, 24

	cx, _ := w.ClampCenter(0, 12, screenW, screenH)
	if left := cx - w.Width/2; left < 0 {
		t.Errorf("left edge %d past the screen at the lower bound", left)
	}

	cx, _ = w.ClampCenter(200, 12, screenW, screenH)
	w.CenterX = cx
	if w.Right() > screenW {
		t.Errorf("right edge %d past the screen at the upper bound", w.Right())
	}
}

func TestWindow_ClampCenterOversized(t *testing.T) {
	// A window wider than the screen pins its left edge at zero instead
	// of oscillating between bounds.
	w := &Window{Width: 100, Height: 10}
	cx, _ := w.ClampCenter(10, 10, 80, 24)
	if cx != 50 {
		t.Errorf("oversized clamp = %d, want 50", cx)
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateClosed, "closed"},
		{StateOpening, "opening"},
		{StateOpen, "open"},
		{StateClosing, "closing"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
