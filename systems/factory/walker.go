package factory

import (
	"github.com/automoto/windowwalker/archetypes"
	"github.com/automoto/windowwalker/components"
	cfg "github.com/automoto/windowwalker/config"
	"github.com/automoto/windowwalker/core"
	"github.com/automoto/windowwalker/desktop"
	"github.com/automoto/windowwalker/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWalkers spawns cfg.Walker.Count walkers over the desktop entry.
// Each one starts StaggerTicks after the previous so they do not overlap.
func CreateWalkers(ecs *ecs.ECS, desktopEntry *donburi.Entry) []*donburi.Entry {
	d := components.Desktop.Get(desktopEntry)
	params := cfg.Walker.Params(desktop.Origin(d.Bounds))

	walkers := make([]*donburi.Entry, 0, cfg.Walker.Count)
	for i := 0; i < cfg.Walker.Count; i++ {
		walkers = append(walkers, CreateWalker(ecs, i, params, d.Source))
	}
	return walkers
}

func CreateWalker(ecs *ecs.ECS, index int, params motion.Params, source motion.WindowSource) *donburi.Entry {
	walker := archetypes.Walker.Spawn(ecs)
	components.Walker.SetValue(walker, components.WalkerData{
		Walker: core.NewWalker(params, source).WithDelay(index * cfg.Walker.StaggerTicks),
		Index:  index,
	})
	return walker
}

// CreateSprites spawns the shared sprite set.
func CreateSprites(ecs *ecs.ECS, set motion.SpriteSet[*ebiten.Image]) *donburi.Entry {
	sprites := archetypes.Sprites.Spawn(ecs)
	components.Sprites.SetValue(sprites, components.SpritesData{
		Set:    set,
		Width:  float64(cfg.Walker.FrameWidth),
		Height: float64(cfg.Walker.FrameHeight),
	})
	return sprites
}
