package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/windowwalker/components"
	cfg "github.com/automoto/windowwalker/config"
	"github.com/automoto/windowwalker/fonts"
	"github.com/automoto/windowwalker/shared/geom"
	"github.com/automoto/windowwalker/shared/motion"
	"github.com/automoto/windowwalker/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines sandbox windows, the box each walker stands on and the
// segment a falling walker will test on its next tick.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	d := GetDesktop(ecs)
	if d == nil {
		return
	}

	if d.Sandbox != nil {
		for _, w := range d.Sandbox.Windows() {
			if !w.Hidden() {
				drawOutline(screen, d, w.Rect(), cfg.UI.OutlineColor)
			}
		}
	}

	face := fonts.Small.Get()
	tags.Walker.Each(ecs.World, func(e *donburi.Entry) {
		w := components.Walker.Get(e)
		s := w.State()
		x, y := toScreen(d, s.Position())

		switch st := s.(type) {
		case motion.Walking:
			drawOutline(screen, d, st.Landing.Box, cfg.UI.LandingColor)
		case motion.Falling:
			p := w.Params()
			next := st.Pos.Add(geom.Vector{X: -p.FallDrift, Y: p.FallAccel * float64(st.AccelerationStep)})
			nx, ny := toScreen(d, next)
			vector.StrokeLine(screen, x, y, nx, ny, 1, cfg.UI.FallPathColor, false)
		}

		label := fmt.Sprintf("#%d %v", w.Index, s)
		text.Draw(screen, label, face, int(x), int(y)+14, cfg.White)
	})
}

func drawOutline(screen *ebiten.Image, d *components.DesktopData, r geom.Rect, c color.Color) {
	x, y := toScreen(d, r.TopLeft())
	w, h := float32(r.Width), float32(r.Height)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
