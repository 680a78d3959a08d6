package motion

import (
	"sort"

	"github.com/automoto/windowwalker/shared/geom"
)

// LandingInfo is the window top the walker landed on and the exact point on
// that edge where the fall path crossed it.
type LandingInfo struct {
	Box   geom.Rect
	Point geom.Point
}

// ComputeLanding finds where the fall segment current->next first meets a
// window top edge. Windows are tried topmost first so that when one tick's
// path crosses several tops the highest one wins. The input slice is not
// modified.
func ComputeLanding(rects []geom.Rect, current, next geom.Point) (LandingInfo, bool) {
	boxes := Sanitize(rects)
	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].Y < boxes[j].Y
	})

	for _, box := range boxes {
		if p, ok := geom.Intersect(current, next, box.TopLeft(), box.TopRight()); ok {
			return LandingInfo{Box: box, Point: p}, true
		}
	}
	return LandingInfo{}, false
}
