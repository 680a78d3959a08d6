//go:build windows

package desktop

import (
	"testing"

	"github.com/automoto/windowwalker/shared/geom"
	"golang.org/x/sys/windows"
)

func TestRectFromRECT(t *testing.T) {
	cases := []struct {
		name string
		in   windows.Rect
		want geom.Rect
	}{
		{"inclusive_edges", windows.Rect{Left: 0, Top: 0, Right: 9, Bottom: 19}, geom.NewRect(0, 0, 10, 20)},
		{"offset", windows.Rect{Left: 100, Top: 50, Right: 739, Bottom: 529}, geom.NewRect(100, 50, 640, 480)},
		{"all_zero_is_empty", windows.Rect{}, geom.Rect{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := rectFromRECT(c.in); got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestEnumWindowsReusesCallback(t *testing.T) {
	// Well past the runtime's callback limit.
	for i := 0; i < 2500; i++ {
		if _, err := enumWindows(); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
}

func TestWindowRectsSkipsVanishedWindows(t *testing.T) {
	p := NewWin32()
	handles, err := enumWindows()
	if err != nil {
		t.Fatal(err)
	}
	// Handles that no longer exist must not fail the snapshot.
	handles = append(handles, windows.HWND(0x7fff0001), windows.HWND(0x7fff0003))

	for _, r := range p.windowRects(handles) {
		if r.Width < 1 || r.Height < 1 {
			t.Fatalf("degenerate rect in snapshot: %v", r)
		}
	}
}
