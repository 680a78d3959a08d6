package components

import (
	"github.com/automoto/windowwalker/layout"
	"github.com/automoto/windowwalker/shared/geom"
	"github.com/automoto/windowwalker/shared/motion"
	"github.com/yohamta/donburi"
)

// DesktopData is the surface walkers move over.
type DesktopData struct {
	Source  motion.WindowSource
	Bounds  geom.Rect
	Sandbox *layout.Sandbox // nil on the real desktop
}

var Desktop = donburi.NewComponentType[DesktopData]()
