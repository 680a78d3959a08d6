package motion

import "github.com/automoto/windowwalker/shared/geom"

// WindowSource supplies the rectangles of the currently visible top-level
// windows. Implementations may block on system calls. Nothing is assumed
// about ordering or stability between calls, and the result may be empty.
type WindowSource interface {
	VisibleWindowRects() ([]geom.Rect, error)
}

// WindowSourceFunc adapts a plain function to WindowSource.
type WindowSourceFunc func() ([]geom.Rect, error)

func (f WindowSourceFunc) VisibleWindowRects() ([]geom.Rect, error) {
	return f()
}

// Sanitize returns a new slice without empty, negative or sub-pixel
// rectangles. Sources already promise this; a misbehaving one must not be
// able to produce a landing on a degenerate edge.
func Sanitize(rects []geom.Rect) []geom.Rect {
	out := make([]geom.Rect, 0, len(rects))
	for _, r := range rects {
		if r.IsEmpty() || r.Width < 1 || r.Height < 1 {
			continue
		}
		out = append(out, r)
	}
	return out
}
