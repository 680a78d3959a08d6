// Package present maps a motion state onto something drawable. It has zero
// dependencies on ebiten; the ebiten and terminal front ends implement Sink.
package present

import (
	"github.com/automoto/windowwalker/shared/geom"
	"github.com/automoto/windowwalker/shared/motion"
)

// Sink receives one frame per presentation.
type Sink[T any] interface {
	Present(box geom.Rect, frame T)
}

// SinkFunc adapts a function to Sink.
type SinkFunc[T any] func(box geom.Rect, frame T)

func (f SinkFunc[T]) Present(box geom.Rect, frame T) { f(box, frame) }

// Box is the sprite rectangle for a walker standing at pos. The foot
// position is the bottom-left corner, so the sprite sits on the window top.
func Box(pos geom.Point, w, h float64) geom.Rect {
	return geom.Rect{X: pos.X, Y: pos.Y - h, Width: w, Height: h}
}

// Show presents s using the frames in set.
func Show[T any](sink Sink[T], set motion.SpriteSet[T], s motion.State, w, h float64) {
	if s == nil {
		return
	}
	sink.Present(Box(s.Position(), w, h), set.Lookup(motion.FrameOf(s)))
}
