package opengl

import (
	"slices"
	"testing"

	"github.com/gogpu/gldraw/graphics"
)

func TestCString(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte("0:1(1): error: syntax error\n\x00"), "0:1(1): error: syntax error\n"},
		{[]byte("\x00"), ""},
		{[]byte("no terminator"), "no terminator"},
	}
	for _, tt := range tests {
		if got := cString(tt.in); got != tt.want {
			t.Errorf("cString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRegistered(t *testing.T) {
	if !slices.Contains(graphics.Backends(), Name) {
		t.Errorf("Backends() = %v, want it to list %q", graphics.Backends(), Name)
	}
}
