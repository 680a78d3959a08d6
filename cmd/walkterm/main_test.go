package main

import (
	"testing"

	"github.com/automoto/windowwalker/layout"
	"github.com/automoto/windowwalker/shared/geom"
	"github.com/automoto/windowwalker/shared/motion"
	"github.com/gdamore/tcell/v2"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	s, _ := newSimView(t)
	sb := layout.New(geom.NewRect(0, 0, 640, 480), geom.NewRect(400, 200, 200, 100))
	return newApp(s, sb, 8, 16)
}

func TestHandleKeys(t *testing.T) {
	a := newTestApp(t)

	if !a.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) || !a.paused {
		t.Fatal("space should pause")
	}
	if !a.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) || a.paused {
		t.Fatal("space should resume")
	}

	quits := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, ev := range quits {
		if a.handle(ev) {
			t.Errorf("%v should quit", ev.Name())
		}
	}
}

func TestTickPausedHoldsState(t *testing.T) {
	a := newTestApp(t)
	if err := a.tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	before := a.walkers[0].State()

	a.paused = true
	if err := a.tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if got := a.walkers[0].State(); got != before {
		t.Errorf("paused tick changed state: %v -> %v", before, got)
	}
}

func TestResetKeyRestarts(t *testing.T) {
	a := newTestApp(t)
	for i := 0; i < 3; i++ {
		if err := a.tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	a.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))

	f, ok := a.walkers[0].State().(motion.Falling)
	if !ok {
		t.Fatalf("after reset state = %T, want Falling", a.walkers[0].State())
	}
	if f.Pos != a.walkers[0].Params().Origin {
		t.Errorf("after reset position = %v, want origin %v", f.Pos, a.walkers[0].Params().Origin)
	}
}
