package systems

import (
	"github.com/automoto/windowwalker/components"
	"github.com/automoto/windowwalker/shared/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetDesktop returns the desktop singleton, or nil before it is created.
func GetDesktop(ecs *ecs.ECS) *components.DesktopData {
	entry, ok := components.Desktop.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Desktop.Get(entry)
}

// UpdateSandbox slides the simulated windows and toggles the one under a
// mouse click. Does nothing on the real desktop.
func UpdateSandbox(ecs *ecs.ECS) {
	d := GetDesktop(ecs)
	if d == nil || d.Sandbox == nil {
		return
	}

	settings := GetOrCreateSettings(ecs)
	if !settings.Paused {
		d.Sandbox.Update(float32(1.0 / float64(ebiten.TPS())))
	}

	input := getOrCreateInput(ecs)
	if GetAction(input, components.ActionToggleWindow).JustPressed && !settings.PointerCaptured {
		p := toDesktop(d, input.CursorX, input.CursorY)
		d.Sandbox.Toggle(p.X, p.Y)
	}
}

// toScreen converts desktop coordinates to screen pixels. The screen's
// origin is the desktop bounds' top-left corner.
func toScreen(d *components.DesktopData, p geom.Point) (float32, float32) {
	return float32(p.X - d.Bounds.X), float32(p.Y - d.Bounds.Y)
}

func toDesktop(d *components.DesktopData, x, y int) geom.Point {
	return geom.Point{X: float64(x) + d.Bounds.X, Y: float64(y) + d.Bounds.Y}
}
