package systems

import (
	"github.com/automoto/windowwalker/components"
	cfg "github.com/automoto/windowwalker/config"
	"github.com/automoto/windowwalker/fonts"
	"github.com/automoto/windowwalker/shared/geom"
	"github.com/automoto/windowwalker/shared/present"
	"github.com/automoto/windowwalker/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDesktop paints the simulated desktop. The real desktop shows
// through the transparent overlay, so nothing is drawn there.
func DrawDesktop(ecs *ecs.ECS, screen *ebiten.Image) {
	d := GetDesktop(ecs)
	if d == nil || d.Sandbox == nil {
		return
	}

	screen.Fill(cfg.UI.DesktopColor)
	face := fonts.Small.Get()
	barH := float32(cfg.UI.TitleBarHeight)

	for _, w := range d.Sandbox.Windows() {
		r := w.Rect()
		x, y := toScreen(d, r.TopLeft())
		wd, ht := float32(r.Width), float32(r.Height)

		if w.Hidden() {
			vector.StrokeRect(screen, x, y, wd, ht, 1, cfg.UI.HiddenColor, false)
			continue
		}
		vector.FillRect(screen, x, y, wd, ht, cfg.UI.WindowColor, false)
		vector.FillRect(screen, x, y, wd, min(barH, ht), cfg.UI.TitleBarColor, false)
		text.Draw(screen, w.Name, face, int(x)+6, int(y)+int(barH)-6, cfg.White)
	}
}

// screenSink draws walker frames onto the screen.
type screenSink struct {
	screen  *ebiten.Image
	desktop *components.DesktopData
	op      ebiten.DrawImageOptions
}

func (s *screenSink) Present(box geom.Rect, frame *ebiten.Image) {
	if frame == nil {
		return
	}
	fw, fh := frame.Bounds().Dx(), frame.Bounds().Dy()
	x, y := toScreen(s.desktop, box.TopLeft())

	s.op.GeoM.Reset()
	s.op.GeoM.Scale(box.Width/float64(fw), box.Height/float64(fh))
	s.op.GeoM.Translate(float64(x), float64(y))
	s.screen.DrawImage(frame, &s.op)
}

// DrawWalkers draws every walker with its feet on its position.
func DrawWalkers(ecs *ecs.ECS, screen *ebiten.Image) {
	d := GetDesktop(ecs)
	spritesEntry, ok := components.Sprites.First(ecs.World)
	if d == nil || !ok {
		return
	}
	sprites := components.Sprites.Get(spritesEntry)
	sink := &screenSink{screen: screen, desktop: d}

	tags.Walker.Each(ecs.World, func(e *donburi.Entry) {
		w := components.Walker.Get(e)
		present.Show[*ebiten.Image](sink, sprites.Set, w.State(), sprites.Width, sprites.Height)
	})
}
