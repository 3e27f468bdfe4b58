package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader_Progress(t *testing.T) {
	h := RenderHeader("Quiz", Progress{Answered: 1, Total: 5}, 80)
	if !strings.Contains(h, "Q 2/5") {
		t.Errorf("header missing counter: %q", h)
	}

	// Counter stays on the last question once everything is answered.
	h = RenderHeader("Result", Progress{Answered: 5, Total: 5}, 80)
	if !strings.Contains(h, "Q 5/5") {
		t.Errorf("header missing capped counter: %q", h)
	}
}

func TestRenderHeader_NoProgress(t *testing.T) {
	h := RenderHeader("Home", Progress{}, 80)
	if strings.Contains(h, "Q ") {
		t.Errorf("header should not show a counter: %q", h)
	}
	if !strings.Contains(h, "Critter Quiz") {
		t.Errorf("header missing app name: %q", h)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Answer"}}, 80)
	if !strings.Contains(f, "Enter") || !strings.Contains(f, "Answer") {
		t.Errorf("footer missing hint: %q", f)
	}
}
