package scenes

import (
	"sync"

	cfg "github.com/automoto/windowwalker/config"
	"github.com/automoto/windowwalker/desktop"
	"github.com/automoto/windowwalker/shared/motion"
	"github.com/automoto/windowwalker/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// OverlayScene draws walkers on a transparent window covering the real
// desktop.
type OverlayScene struct {
	ecs      *ecs.ECS
	provider desktop.Provider
	sprites  motion.SpriteSet[*ebiten.Image]
	watcher  *cfg.Watcher
	once     sync.Once
}

func NewOverlayScene(provider desktop.Provider, sprites motion.SpriteSet[*ebiten.Image], watcher *cfg.Watcher) *OverlayScene {
	return &OverlayScene{provider: provider, sprites: sprites, watcher: watcher}
}

func (ovs *OverlayScene) Update() {
	ovs.once.Do(ovs.configure)
	ovs.ecs.Update()
}

func (ovs *OverlayScene) Draw(screen *ebiten.Image) {
	// Keep the window transparent outside the sprites
	screen.Clear()

	if ovs.ecs == nil {
		return
	}
	ovs.ecs.Draw(screen)
}

func (ovs *OverlayScene) configure() {
	e := newWalkerECS(ovs.watcher)

	desktopEntry, err := factory.CreateDesktop(e, ovs.provider)
	if err != nil {
		panic("failed to read desktop bounds: " + err.Error())
	}
	spawnWalkers(e, desktopEntry, ovs.sprites)

	ovs.ecs = e
}
