package core

import (
	"errors"
	"testing"

	"github.com/automoto/windowwalker/shared/geom"
	"github.com/automoto/windowwalker/shared/motion"
)

var origin = geom.Point{X: 1000, Y: 0}

// flakySource fails while err is set.
type flakySource struct {
	rects []geom.Rect
	err   error
}

func (f *flakySource) VisibleWindowRects() ([]geom.Rect, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rects, nil
}

func TestNewWalkerStartsFalling(t *testing.T) {
	w := NewWalker(motion.DefaultParams(origin), &flakySource{})
	if w.State() != motion.Start(motion.DefaultParams(origin)) {
		t.Fatalf("got %v, want start state", w.State())
	}
}

func TestTickKeepsStateOnSourceError(t *testing.T) {
	boom := errors.New("display went away")
	src := &flakySource{err: boom}
	w := NewWalker(motion.DefaultParams(origin), src)
	before := w.State()

	if err := w.Tick(); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
	if w.State() != before {
		t.Fatalf("state changed on error: %v", w.State())
	}

	src.err = nil
	if err := w.Tick(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, ok := w.State().(motion.Falling)
	if !ok || f.AccelerationStep != 2 || f.Pos != (geom.Point{X: 976, Y: 4}) {
		t.Fatalf("unexpected state after recovery: %v", w.State())
	}
	if w.Ticks() != 2 {
		t.Fatalf("ticks %d, want 2", w.Ticks())
	}
}

func TestTickLandsAndWalks(t *testing.T) {
	src := &flakySource{rects: []geom.Rect{geom.NewRect(0, 100, 1000, 20)}}
	w := NewWalker(motion.DefaultParams(geom.Point{X: 500, Y: 0}), src)

	for i := 0; i < 7; i++ {
		if err := w.Tick(); err != nil {
			t.Fatalf("tick %d: %v", i+1, err)
		}
	}
	if w.State().Kind() != motion.KindWalking {
		t.Fatalf("expected walking after 7 ticks, got %v", w.State())
	}

	src.err = errors.New("unused while walking")
	if err := w.Tick(); err != nil {
		t.Fatalf("walking must not query the source: %v", err)
	}
}

func TestDelay(t *testing.T) {
	w := NewWalker(motion.DefaultParams(origin), &flakySource{}).WithDelay(2)
	start := w.State()

	w.Tick()
	w.Tick()
	if w.State() != start {
		t.Fatalf("walker moved during its delay: %v", w.State())
	}
	w.Tick()
	if w.State() == start {
		t.Fatal("walker did not move after its delay")
	}
}

func TestResetAndParams(t *testing.T) {
	src := &flakySource{}
	w := NewWalker(motion.DefaultParams(origin), src)
	w.Tick()
	w.Tick()

	p := motion.DefaultParams(origin)
	p.FallDrift = 10
	w.SetParams(p)
	pos := w.State().Position()
	w.Tick()
	if got := w.State().Position().X; got != pos.X-10 {
		t.Fatalf("new drift not applied: x=%v, want %v", got, pos.X-10)
	}

	w.Reset()
	if w.State() != motion.Start(p) {
		t.Fatalf("reset gave %v", w.State())
	}
}
