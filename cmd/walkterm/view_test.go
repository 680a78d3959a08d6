package main

import (
	"testing"

	"github.com/automoto/windowwalker/layout"
	"github.com/automoto/windowwalker/shared/geom"
	"github.com/automoto/windowwalker/shared/motion"
	"github.com/automoto/windowwalker/shared/present"
	"github.com/gdamore/tcell/v2"
)

func newSimView(t *testing.T) (tcell.SimulationScreen, *view) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(80, 30)
	return s, newView(s, geom.NewRect(0, 0, 640, 480), 8, 16)
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestViewCell(t *testing.T) {
	_, v := newSimView(t)
	tests := []struct {
		p        geom.Point
		col, row int
	}{
		{geom.Point{X: 0, Y: 0}, 0, 0},
		{geom.Point{X: 7.9, Y: 15.9}, 0, 0},
		{geom.Point{X: 8, Y: 16}, 1, 1},
		{geom.Point{X: 100, Y: 200}, 12, 12},
		{geom.Point{X: -1, Y: -1}, -1, -1},
	}
	for _, tt := range tests {
		col, row := v.cell(tt.p)
		if col != tt.col || row != tt.row {
			t.Errorf("cell(%v) = (%d, %d), want (%d, %d)", tt.p, col, row, tt.col, tt.row)
		}
	}
}

func TestViewToDesktopRoundTrips(t *testing.T) {
	_, v := newSimView(t)
	p := v.toDesktop(5, 7)
	if col, row := v.cell(p); col != 5 || row != 7 {
		t.Errorf("cell(toDesktop(5, 7)) = (%d, %d)", col, row)
	}
}

func TestViewDrawsWindowOutline(t *testing.T) {
	s, v := newSimView(t)
	sb := layout.New(geom.NewRect(0, 0, 640, 480), geom.NewRect(80, 160, 160, 96))
	v.drawWindows(sb.Windows())

	// 80,160 -> (10,10); bottom-right pixel 239,255 -> (29,15).
	checks := []struct {
		x, y int
		want rune
	}{
		{10, 10, tcell.RuneULCorner},
		{29, 10, tcell.RuneURCorner},
		{10, 15, tcell.RuneLLCorner},
		{29, 15, tcell.RuneLRCorner},
		{20, 15, tcell.RuneHLine},
		{10, 12, tcell.RuneVLine},
	}
	for _, c := range checks {
		if got := runeAt(s, c.x, c.y); got != c.want {
			t.Errorf("rune at (%d, %d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
}

func TestViewPresentsWalkerAboveFeet(t *testing.T) {
	s, v := newSimView(t)
	state := motion.Walking{Pos: geom.Point{X: 100, Y: 160}, FrameIndex: 1}
	present.Show[rune](v, runeSprites, state, 32, 48)

	if got := runeAt(s, 12, 9); got != runeSprites.Walk[1] {
		t.Errorf("walker rune = %q, want %q", got, runeSprites.Walk[1])
	}
	if got := runeAt(s, 12, 10); got == runeSprites.Walk[1] {
		t.Error("walker drawn on the window edge row")
	}
}
