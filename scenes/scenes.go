package scenes

import (
	"log"

	"github.com/automoto/windowwalker/components"
	cfg "github.com/automoto/windowwalker/config"
	"github.com/automoto/windowwalker/shared/motion"
	"github.com/automoto/windowwalker/systems"
	"github.com/automoto/windowwalker/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// newWalkerECS builds the systems and renderers shared by both scenes.
// The desktop entity must be created by the caller.
func newWalkerECS(watcher *cfg.Watcher) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Input and toggles first
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateConfig)
	e.AddSystem(systems.UpdateMessage)

	// Desktop before walkers so a tick sees this frame's windows
	e.AddSystem(systems.UpdateSandbox)
	e.AddSystem(systems.UpdateWalkers)

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawDesktop)
	e.AddRenderer(cfg.Default, systems.DrawWalkers)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawMessage)

	systems.GetOrCreateSettings(e).Watcher = watcher
	return e
}

// spawnWalkers creates the sprite set and the walkers over desktopEntry.
func spawnWalkers(e *ecs.ECS, desktopEntry *donburi.Entry, sprites motion.SpriteSet[*ebiten.Image]) {
	factory.CreateSprites(e, sprites)
	walkers := factory.CreateWalkers(e, desktopEntry)
	log.Printf("[scene] %d walker(s) over %v", len(walkers), components.Desktop.Get(desktopEntry).Bounds)
}
