// Package motion is the walker's motion state machine and landing solver.
// Every state is a plain value and Advance is a pure function of the current
// state, the tuning parameters and one window snapshot. It has zero
// dependencies on ebiten so it can run headless.
package motion

import (
	"fmt"

	"github.com/automoto/windowwalker/shared/geom"
)

// Params tunes the state machine. Distances are pixels per tick.
type Params struct {
	WalkStep   float64    // leftward walk distance
	FallDrift  float64    // leftward drift while falling
	FallAccel  float64    // vertical distance per acceleration step
	OffscreenX float64    // below this x the walker wraps back to Origin
	Origin     geom.Point // re-entry point: desktop right edge, top edge
}

// DefaultParams returns the stock tuning with origin as the re-entry point.
func DefaultParams(origin geom.Point) Params {
	return Params{
		WalkStep:   24,
		FallDrift:  24,
		FallAccel:  4,
		OffscreenX: -64, // wider than the sprite
		Origin:     origin,
	}
}

// State is one of Walking or Falling. The set is closed: only this package
// can add variants.
type State interface {
	Position() geom.Point
	Kind() Kind
	isState()
}

// Kind names a state variant.
type Kind int

const (
	KindWalking Kind = iota
	KindFalling
)

func (k Kind) String() string {
	switch k {
	case KindWalking:
		return "walking"
	case KindFalling:
		return "falling"
	}
	return "unknown"
}

// Walking moves left along the top of Landing.Box.
type Walking struct {
	Landing    LandingInfo
	Pos        geom.Point
	FrameIndex int
}

func (w Walking) Position() geom.Point { return w.Pos }
func (Walking) Kind() Kind             { return KindWalking }
func (Walking) isState()               {}

func (w Walking) String() string {
	return fmt.Sprintf("walking at (%.1f, %.1f) frame %d", w.Pos.X, w.Pos.Y, w.FrameIndex)
}

// Falling drifts left while falling with linearly growing speed.
// AccelerationStep is the multiplier used by the next Advance.
type Falling struct {
	Pos              geom.Point
	AccelerationStep int
	Frame            SpriteRef
}

func (f Falling) Position() geom.Point { return f.Pos }
func (Falling) Kind() Kind             { return KindFalling }
func (Falling) isState()               {}

func (f Falling) String() string {
	return fmt.Sprintf("falling at (%.1f, %.1f) step %d", f.Pos.X, f.Pos.Y, f.AccelerationStep)
}

// Start is the state the walker enters at startup and after wrapping off
// the left edge: falling from the top-right origin.
func Start(p Params) State {
	return newFalling(p.Origin)
}

// Land begins a walk at the landing point.
func Land(info LandingInfo) Walking {
	return Walking{Landing: info, Pos: info.Point}
}

func newFalling(pos geom.Point) Falling {
	return Falling{Pos: pos, AccelerationStep: 1, Frame: FallRef}
}

// Advance computes the state after one tick. Only a falling state queries
// src; its error is returned unchanged together with the unmodified state.
func Advance(s State, p Params, src WindowSource) (State, error) {
	switch st := s.(type) {
	case Walking:
		return advanceWalking(st, p), nil
	case Falling:
		return advanceFalling(st, p, src)
	case nil:
		return Start(p), nil
	}
	panic(fmt.Sprintf("motion: unknown state %T", s))
}

func advanceWalking(w Walking, p Params) State {
	next := w.Pos.Add(geom.Vector{X: -p.WalkStep})
	frame := (w.FrameIndex + 1) % WalkFrameCount

	if next.X >= w.Landing.Box.X {
		return Walking{Landing: w.Landing, Pos: next, FrameIndex: frame}
	}
	if next.X < p.OffscreenX {
		return Start(p)
	}
	return newFalling(next)
}

func advanceFalling(f Falling, p Params, src WindowSource) (State, error) {
	next := f.Pos.Add(geom.Vector{X: -p.FallDrift, Y: p.FallAccel * float64(f.AccelerationStep)})

	rects, err := src.VisibleWindowRects()
	if err != nil {
		return f, err
	}

	if info, ok := ComputeLanding(rects, f.Pos, next); ok {
		return Land(info), nil
	}
	if next.X < p.OffscreenX {
		return Start(p), nil
	}
	return Falling{Pos: next, AccelerationStep: f.AccelerationStep + 1, Frame: f.Frame}, nil
}
