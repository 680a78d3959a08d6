package desktop

import (
	"github.com/automoto/windowwalker/shared/geom"
	"github.com/automoto/windowwalker/shared/motion"
)

// Static reports a fixed set of windows. Used for headless runs and tests.
type Static struct {
	Rects []geom.Rect
	Area  geom.Rect
}

func NewStatic(area geom.Rect, rects ...geom.Rect) *Static {
	return &Static{Rects: rects, Area: area}
}

func (s *Static) VisibleWindowRects() ([]geom.Rect, error) {
	return motion.Sanitize(s.Rects), nil
}

func (s *Static) Bounds() (geom.Rect, error) {
	return s.Area, nil
}
