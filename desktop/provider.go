// Package desktop enumerates the real top-level windows of the running
// desktop and reports them as landing rectangles.
package desktop

import (
	"errors"
	"slices"

	"github.com/automoto/windowwalker/shared/geom"
	"github.com/automoto/windowwalker/shared/motion"
)

var ErrUnsupported = errors.New("desktop: window enumeration not supported on this platform")

// Provider is a window source that also knows the usable desktop area.
// Bounds is used to place the walker's re-entry origin.
type Provider interface {
	motion.WindowSource
	Bounds() (geom.Rect, error)
}

// New returns the provider for the current platform. Windows whose title is
// in excludeTitles are never reported, so the overlay can hide itself.
func New(excludeTitles ...string) (Provider, error) {
	return newPlatform(excludeTitles)
}

// Origin is the top-right corner of bounds.
func Origin(bounds geom.Rect) geom.Point {
	return bounds.TopRight()
}

func excluded(title string, excludeTitles []string) bool {
	return title != "" && slices.Contains(excludeTitles, title)
}
